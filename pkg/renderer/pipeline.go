// Package renderer turns a camera, a ray caster and a sampling strategy into
// finished image tiles. Tiles are rendered in parallel; results reach the
// sink and progress callback from a single goroutine.
package renderer

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/log"
	"github.com/df07/go-raycaster/pkg/raycaster"
	"github.com/df07/go-raycaster/pkg/shading"
)

var logger = log.New("renderer")

// MotionBlur configures time sampling within a frame
type MotionBlur struct {
	Enabled bool
	Open    float64 // Shutter open, relative to the frame time
	Close   float64 // Shutter close, relative to the frame time
}

// Animator moves the scene to a point in time
type Animator interface {
	EvaluateAnimationAtTime(t float64)
}

// Config contains the image and scheduling parameters of a pipeline
type Config struct {
	Width, Height int
	Workers       int       // 0 = one per CPU
	Seed          uint64    // Base seed; pixels are reproducible for a given seed
	Background    core.Vec3 // Color of pixels whose rays are not traced
	MotionBlur    MotionBlur
}

// Pipeline renders images by sampling pixels and casting camera rays
type Pipeline struct {
	config    Config
	camera    Camera
	caster    raycaster.Caster
	strategy  Strategy
	filter    Filter
	sequencer Sequencer
	animator  Animator
	sink      Sink
	progress  Progress
	pass      shading.Pass

	frameTime float64
	frameSeed uint64

	// animation serializes scene time changes with the casts that depend on them
	animation sync.Mutex
}

// NewPipeline creates a pipeline with a unit box filter and 32 pixel blocks
func NewPipeline(config Config, camera Camera, caster raycaster.Caster, strategy Strategy) *Pipeline {
	return &Pipeline{
		config:    config,
		camera:    camera,
		caster:    caster,
		strategy:  strategy,
		filter:    BoxFilter{Width: 1},
		sequencer: BlockSequencer{Size: 32},
		frameSeed: config.Seed,
	}
}

// SetFilter sets the pixel filter
func (p *Pipeline) SetFilter(f Filter) { p.filter = f }

// SetSequencer sets the tile order
func (p *Pipeline) SetSequencer(s Sequencer) { p.sequencer = s }

// SetSink sets the receiver of finished tiles
func (p *Pipeline) SetSink(s Sink) { p.sink = s }

// SetProgress sets the progress callback
func (p *Pipeline) SetProgress(pr Progress) { p.progress = pr }

// SetAnimator sets the hook used for animation frames and motion blur
func (p *Pipeline) SetAnimator(a Animator) { p.animator = a }

// SetPass sets the pass worker contexts start in
func (p *Pipeline) SetPass(pass shading.Pass) { p.pass = pass }

// Config returns the pipeline configuration
func (p *Pipeline) Config() Config { return p.config }

// RenderTile renders every pixel of rect with rc. It is safe to call from
// several goroutines with distinct contexts.
func (p *Pipeline) RenderTile(rc *shading.Context, rect image.Rectangle) (*Raster, RenderStats) {
	raster := NewRaster(rect)
	stats := RenderStats{Tiles: 1}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			px := core.Pixel{X: x, Y: y}
			rc.ReseedPixel(p.frameSeed, px)

			result, ok := p.renderPixel(rc, px)
			if !ok {
				stats.Recovered++
			}
			raster.Set(x, y, result)
			stats.addPixel(result.Samples)
		}
	}

	stats.finalize()
	return raster, stats
}

// renderPixel runs the strategy for one pixel. A panic while shading the
// pixel yields the background color.
func (p *Pipeline) renderPixel(rc *shading.Context, px core.Pixel) (result PixelResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("pixel (%d,%d) failed: %v", px.X, px.Y, r)
			result, ok = PixelResult{Color: p.config.Background}, false
		}
	}()
	return p.strategy.RenderPixel(&pixelSampler{p: p, rc: rc, px: px}), true
}

// Render renders rect (nil = the whole image) and delivers tiles to the sink.
// It returns ErrInterrupted when the progress callback or ctx stops it
// before every tile is done; tiles already delivered remain valid and
// EndFrame is not called.
func (p *Pipeline) Render(ctx context.Context, rect *image.Rectangle) (RenderStats, error) {
	if err := p.validate(); err != nil {
		return RenderStats{}, err
	}

	region := image.Rect(0, 0, p.config.Width, p.config.Height)
	if rect != nil {
		region = rect.Intersect(region)
	}
	if region.Empty() {
		return RenderStats{}, ErrEmptyRegion
	}

	tiles := p.sequencer.Tiles(region)
	if p.progress != nil {
		p.progress.SetTitle(fmt.Sprintf("rendering %v with %s strategy, %s order (%d tiles)",
			region, p.strategy.Name(), p.sequencer.Name(), len(tiles)))
	}

	started := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(p.config.Workers, p.frameSeed, p.pass, p.RenderTile)
	results := make(chan TileResult)
	errc := make(chan error, 1)
	go func() { errc <- pool.Run(ctx, tiles, results) }()

	var stats RenderStats
	done, stopped := 0, false
	for res := range results {
		if stopped {
			continue
		}
		if p.sink != nil {
			p.sink.WriteTile(res.Raster)
		}
		stats.Merge(res.Stats)
		done++

		if p.progress != nil && !p.progress.Progress(done, len(tiles)) {
			stopped = true
			cancel()
		}
	}
	if err := <-errc; err != nil && !stopped {
		return stats, err
	}

	stats.Duration = time.Since(started)
	if done < len(tiles) {
		logger.Noticef("render interrupted after %d of %d tiles", done, len(tiles))
		return stats, ErrInterrupted
	}

	if p.sink != nil {
		p.sink.EndFrame()
	}
	logger.Debugf("rendered %d tiles, %d samples in %v", stats.Tiles, stats.TotalSamples, stats.Duration)
	return stats, nil
}

// RenderAnimationFrame renders rect at frameTime. The frame's random
// sequence depends only on the seed and frameTime.
func (p *Pipeline) RenderAnimationFrame(ctx context.Context, rect *image.Rectangle, frameTime float64) (RenderStats, error) {
	p.frameTime = frameTime
	p.frameSeed = p.config.Seed ^ mixSeed(math.Float64bits(frameTime))

	if p.animator != nil && !p.motionBlur() {
		p.animator.EvaluateAnimationAtTime(frameTime)
	}
	return p.Render(ctx, rect)
}

// RenderAnimation renders one frame per entry of times. Progress is polled
// between frames as well as between tiles.
func (p *Pipeline) RenderAnimation(ctx context.Context, rect *image.Rectangle, times []float64) ([]RenderStats, error) {
	all := make([]RenderStats, 0, len(times))
	for i, t := range times {
		if ctx.Err() != nil {
			return all, ErrInterrupted
		}
		if i > 0 && p.progress != nil && !p.progress.Progress(i, len(times)) {
			return all, ErrInterrupted
		}

		stats, err := p.RenderAnimationFrame(ctx, rect, t)
		all = append(all, stats)
		if err != nil {
			return all, err
		}
		logger.Noticef("frame %d/%d (t=%.3f): %d samples in %v", i+1, len(times), t, stats.TotalSamples, stats.Duration)
	}
	return all, nil
}

func (p *Pipeline) validate() error {
	switch {
	case p.caster == nil:
		return ErrNoCaster
	case p.camera == nil:
		return ErrNoCamera
	case p.strategy == nil:
		return ErrNoStrategy
	}
	return nil
}

func (p *Pipeline) motionBlur() bool {
	return p.config.MotionBlur.Enabled && p.animator != nil
}

// pixelSampler evaluates samples of one pixel for a strategy
type pixelSampler struct {
	p  *Pipeline
	rc *shading.Context
	px core.Pixel
}

func (ps *pixelSampler) Sampler() core.Sampler {
	return ps.rc.Sampler()
}

func (ps *pixelSampler) Sample(u core.Vec2) Sample {
	p := ps.p
	offset, weight := p.filter.Warp(u)
	s := (float64(ps.px.X) + 0.5 + offset.X) / float64(p.config.Width)
	t := 1 - (float64(ps.px.Y)+0.5+offset.Y)/float64(p.config.Height)
	lens := ps.rc.Sampler().Get2D()

	var color core.Vec3
	var hit bool
	if p.motionBlur() {
		mb := p.config.MotionBlur
		at := p.frameTime + mb.Open + ps.rc.Sampler().Get1D()*(mb.Close-mb.Open)
		color, hit = ps.castAt(at, s, t, lens)
	} else {
		color, hit = ps.cast(s, t, lens)
	}

	alpha := 0.0
	if hit {
		alpha = 1
	}
	return Sample{Color: color, Alpha: alpha, Weight: weight}
}

// castAt moves the scene to time at and casts while holding the animation
// lock, so no other sample changes the time before the ray is traced
func (ps *pixelSampler) castAt(at, s, t float64, lens core.Vec2) (core.Vec3, bool) {
	ps.p.animation.Lock()
	defer ps.p.animation.Unlock()

	ps.p.animator.EvaluateAnimationAtTime(at)
	return ps.cast(s, t, lens)
}

func (ps *pixelSampler) cast(s, t float64, lens core.Vec2) (core.Vec3, bool) {
	ray := ps.p.camera.GetRay(s, t, lens)
	color, _, hit := ps.p.caster.Cast(ps.rc, ps.px, ray, raycaster.NewRayState(), ps.p.config.Background, nil)
	return color, hit
}

func mixSeed(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
