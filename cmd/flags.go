package cmd

import (
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/df07/go-raycaster/pkg/config"
)

// RenderFlags are shared by the render and animate commands. Any flag that
// is set overrides the value from the config file.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "YAML render configuration",
	},
	cli.StringFlag{
		Name:  "scene, s",
		Usage: "built-in scene name",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "workers, j",
		Usage: "render workers (0 = one per CPU)",
	},
	cli.Uint64Flag{
		Name:  "seed",
		Usage: "random seed",
	},
	cli.StringFlag{
		Name:  "strategy",
		Usage: "pixel strategy: fixed, adaptive or contrast",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel for the fixed strategy",
	},
	cli.StringFlag{
		Name:  "kernel",
		Usage: "sub-pixel sample pattern",
	},
	cli.StringFlag{
		Name:  "filter",
		Usage: "reconstruction filter",
	},
	cli.StringFlag{
		Name:  "sequence",
		Usage: "tile order: scanline, block or hilbert",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Usage: "maximum ray depth",
	},
	cli.BoolFlag{
		Name:  "motion-blur",
		Usage: "sample time within the shutter interval",
	},
}

// loadConfig reads the config file, if any, and applies flag overrides
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet("scene") {
		cfg.Scene = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		cfg.Image.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Image.Height = ctx.Int("height")
	}
	if ctx.IsSet("workers") {
		cfg.Image.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		cfg.Image.Seed = ctx.Uint64("seed")
	}
	if ctx.IsSet("strategy") {
		cfg.Strategy.Name = ctx.String("strategy")
	}
	if ctx.IsSet("spp") {
		cfg.Strategy.Samples = ctx.Int("spp")
	}
	if ctx.IsSet("kernel") {
		cfg.Kernel = ctx.String("kernel")
	}
	if ctx.IsSet("filter") {
		cfg.Filter.Name = ctx.String("filter")
	}
	if ctx.IsSet("sequence") {
		cfg.Sequence = ctx.String("sequence")
	}
	if ctx.IsSet("max-depth") {
		cfg.Caster.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("motion-blur") {
		cfg.MotionBlur.Enabled = ctx.Bool("motion-blur")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, xerrors.Errorf("while applying command line flags: %w", err)
	}
	return cfg, nil
}
