// Package config loads render settings from YAML files.
package config

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/raycaster"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// Config is the complete description of a render job
type Config struct {
	Scene      string           `yaml:"scene"`
	Image      ImageConfig      `yaml:"image"`
	Sequence   string           `yaml:"sequence"`
	Strategy   StrategyConfig   `yaml:"strategy"`
	Kernel     string           `yaml:"kernel"`
	Filter     FilterConfig     `yaml:"filter"`
	Caster     CasterConfig     `yaml:"caster"`
	MotionBlur MotionBlurConfig `yaml:"motion_blur"`
	Animation  AnimationConfig  `yaml:"animation"`
}

// ImageConfig sizes the output and the work split
type ImageConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	TileSize   int        `yaml:"tile_size"`
	Workers    int        `yaml:"workers"` // 0 = one per CPU
	Seed       uint64     `yaml:"seed"`
	Background [3]float64 `yaml:"background"`
}

// StrategyConfig selects how each pixel is sampled
type StrategyConfig struct {
	Name       string     `yaml:"name"`
	Samples    int        `yaml:"samples"`     // fixed
	MinSamples int        `yaml:"min_samples"` // adaptive
	MaxSteps   int        `yaml:"max_steps"`   // adaptive
	Threshold  float64    `yaml:"threshold"`   // adaptive
	Contrast   [3]float64 `yaml:"contrast"`    // contrast, per channel
	MaxLevel   int        `yaml:"max_level"`   // contrast
}

// FilterConfig selects the reconstruction filter
type FilterConfig struct {
	Name  string  `yaml:"name"`
	Width float64 `yaml:"width"`
}

// CasterConfig bounds ray recursion
type CasterConfig struct {
	MaxDepth      int     `yaml:"max_depth"`
	MinImportance float64 `yaml:"min_importance"`
	AmbientIOR    float64 `yaml:"ambient_ior"`
}

// MotionBlurConfig is the shutter interval relative to the frame time
type MotionBlurConfig struct {
	Enabled bool    `yaml:"enabled"`
	Open    float64 `yaml:"open"`
	Close   float64 `yaml:"close"`
}

// AnimationConfig lists the frames rendered by the animate command
type AnimationConfig struct {
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Frames int     `yaml:"frames"`
}

// Default returns the settings used when no file is given
func Default() Config {
	caster := raycaster.DefaultConfig()
	return Config{
		Scene: "default",
		Image: ImageConfig{
			Width:    400,
			Height:   225,
			TileSize: 32,
			Seed:     1,
		},
		Sequence: "hilbert",
		Strategy: StrategyConfig{
			Name:       "fixed",
			Samples:    16,
			MinSamples: 4,
			MaxSteps:   4,
			Threshold:  1e-4,
			Contrast:   [3]float64{0.05, 0.05, 0.05},
			MaxLevel:   2,
		},
		Kernel: "jittered",
		Filter: FilterConfig{Name: "box", Width: 1},
		Caster: CasterConfig{
			MaxDepth:      caster.MaxDepth,
			MinImportance: caster.MinImportance,
			AmbientIOR:    caster.AmbientIOR,
		},
		MotionBlur: MotionBlurConfig{Open: 0, Close: 0.5},
		Animation:  AnimationConfig{Start: 0, End: 1, Frames: 24},
	}
}

// Load reads and validates the YAML file at path on top of the defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, xerrors.Errorf("while reading config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, xerrors.Errorf("while loading config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !xerrors.Is(err, io.EOF) {
		return Config{}, xerrors.Errorf("while decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch {
	case c.Image.Width <= 0 || c.Image.Height <= 0:
		return xerrors.Errorf("image size %dx%d: %w", c.Image.Width, c.Image.Height, ErrInvalid)
	case c.Image.TileSize <= 0:
		return xerrors.Errorf("tile size %d: %w", c.Image.TileSize, ErrInvalid)
	case c.Image.Workers < 0:
		return xerrors.Errorf("workers %d: %w", c.Image.Workers, ErrInvalid)
	case c.Caster.MaxDepth <= 0:
		return xerrors.Errorf("max depth %d: %w", c.Caster.MaxDepth, ErrInvalid)
	case c.Caster.MinImportance < 0:
		return xerrors.Errorf("min importance %v: %w", c.Caster.MinImportance, ErrInvalid)
	case c.Caster.AmbientIOR < 1:
		return xerrors.Errorf("ambient IOR %v: %w", c.Caster.AmbientIOR, ErrInvalid)
	case c.MotionBlur.Enabled && c.MotionBlur.Close < c.MotionBlur.Open:
		return xerrors.Errorf("shutter closes at %v before opening at %v: %w", c.MotionBlur.Close, c.MotionBlur.Open, ErrInvalid)
	case c.Animation.Frames <= 0:
		return xerrors.Errorf("animation frames %d: %w", c.Animation.Frames, ErrInvalid)
	}

	if _, ok := renderer.SequencerByName(c.Sequence, c.Image.TileSize); !ok {
		return xerrors.Errorf("sequence %q: %w", c.Sequence, ErrUnknownName)
	}
	if _, ok := renderer.KernelByName(c.Kernel); !ok {
		return xerrors.Errorf("kernel %q: %w", c.Kernel, ErrUnknownName)
	}
	if _, ok := renderer.FilterByName(c.Filter.Name, c.Filter.Width); !ok || c.Filter.Width <= 0 {
		return xerrors.Errorf("filter %q of width %v: %w", c.Filter.Name, c.Filter.Width, ErrInvalid)
	}
	return c.validateStrategy()
}

func (c Config) validateStrategy() error {
	s := c.Strategy
	switch s.Name {
	case "fixed":
		if s.Samples <= 0 {
			return xerrors.Errorf("fixed strategy with %d samples: %w", s.Samples, ErrInvalid)
		}
	case "adaptive":
		if s.MinSamples <= 0 || s.MaxSteps < 0 || s.Threshold < 0 {
			return xerrors.Errorf("adaptive strategy %+v: %w", s, ErrInvalid)
		}
	case "contrast":
		if s.MaxLevel < 0 || s.Contrast[0] < 0 || s.Contrast[1] < 0 || s.Contrast[2] < 0 {
			return xerrors.Errorf("contrast strategy %+v: %w", s, ErrInvalid)
		}
	default:
		return xerrors.Errorf("strategy %q: %w", s.Name, ErrUnknownName)
	}
	return nil
}

// RendererStrategy builds the configured pixel strategy
func (c Config) RendererStrategy() (renderer.Strategy, error) {
	kernel, ok := renderer.KernelByName(c.Kernel)
	if !ok {
		return nil, xerrors.Errorf("kernel %q: %w", c.Kernel, ErrUnknownName)
	}
	s := c.Strategy
	switch s.Name {
	case "fixed":
		return renderer.FixedKernel{Kernel: kernel, Samples: s.Samples}, nil
	case "adaptive":
		return renderer.Adaptive{Kernel: kernel, MinSamples: s.MinSamples, MaxSteps: s.MaxSteps, Threshold: s.Threshold}, nil
	case "contrast":
		return renderer.Contrast{Threshold: core.NewVec3(s.Contrast[0], s.Contrast[1], s.Contrast[2]), MaxLevel: s.MaxLevel}, nil
	}
	return nil, xerrors.Errorf("strategy %q: %w", s.Name, ErrUnknownName)
}

// RendererConfig returns the pipeline settings
func (c Config) RendererConfig() renderer.Config {
	bg := c.Image.Background
	return renderer.Config{
		Width:      c.Image.Width,
		Height:     c.Image.Height,
		Workers:    c.Image.Workers,
		Seed:       c.Image.Seed,
		Background: core.NewVec3(bg[0], bg[1], bg[2]),
		MotionBlur: renderer.MotionBlur{
			Enabled: c.MotionBlur.Enabled,
			Open:    c.MotionBlur.Open,
			Close:   c.MotionBlur.Close,
		},
	}
}

// CasterConfig returns the ray caster limits
func (c Config) CasterConfig() raycaster.Config {
	return raycaster.Config{
		MaxDepth:      c.Caster.MaxDepth,
		MinImportance: c.Caster.MinImportance,
		AmbientIOR:    c.Caster.AmbientIOR,
	}
}

// FrameTimes returns the animation frame times, evenly spaced from Start.
// End is included when there is more than one frame.
func (c Config) FrameTimes() []float64 {
	a := c.Animation
	times := make([]float64, a.Frames)
	for i := range times {
		if a.Frames == 1 {
			times[i] = a.Start
			continue
		}
		times[i] = a.Start + (a.End-a.Start)*float64(i)/float64(a.Frames-1)
	}
	return times
}
