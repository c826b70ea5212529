package cmd

import (
	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/raycaster"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// job bundles everything needed to render frames of a scene
type job struct {
	cfg      config.Config
	scene    *scene.Scene
	caster   *raycaster.RayCaster
	pipeline *renderer.Pipeline
	sink     *renderer.ImageSink
}

// newJob builds the scene and wires it into a pipeline according to cfg
func newJob(cfg config.Config) (*job, error) {
	sc, err := scene.ByName(cfg.Scene)
	if err != nil {
		return nil, err
	}
	strategy, err := cfg.RendererStrategy()
	if err != nil {
		return nil, err
	}

	camera := sc.Camera
	camera.AspectRatio = float64(cfg.Image.Width) / float64(cfg.Image.Height)
	caster := sc.NewCaster(cfg.CasterConfig())

	p := renderer.NewPipeline(cfg.RendererConfig(), renderer.NewPerspectiveCamera(camera), caster, strategy)
	if f, ok := renderer.FilterByName(cfg.Filter.Name, cfg.Filter.Width); ok {
		p.SetFilter(f)
	}
	if s, ok := renderer.SequencerByName(cfg.Sequence, cfg.Image.TileSize); ok {
		p.SetSequencer(s)
	}
	if sc.Animated() {
		p.SetAnimator(sc)
	}
	sink := renderer.NewImageSink(cfg.Image.Width, cfg.Image.Height)
	p.SetSink(sink)
	p.SetProgress(renderer.NewLogProgress())

	logger.Infof("scene %q: %d objects, %d lights; %s strategy, %s kernel, %s filter, %s order",
		sc.Name, len(sc.Objects()), len(sc.Lights), strategy.Name(), cfg.Kernel, cfg.Filter.Name, cfg.Sequence)
	return &job{cfg: cfg, scene: sc, caster: caster, pipeline: p, sink: sink}, nil
}
