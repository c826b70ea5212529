package cmd

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// RenderFrame renders a still frame to a PNG file
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	j, err := newJob(cfg)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := j.pipeline.Render(runCtx, nil)
	if xerrors.Is(err, renderer.ErrInterrupted) {
		logger.Warning("render interrupted; writing the partial frame")
	} else if err != nil {
		return xerrors.Errorf("while rendering frame: %w", err)
	}

	out := ctx.String("out")
	if err := writePNG(out, j.sink.Image()); err != nil {
		return err
	}
	displayFrameStats([]renderer.RenderStats{stats}, j.caster.Stats(), time.Since(start))
	logger.Noticef("frame saved as %s", out)
	return err
}

// RenderAnimation renders the configured frame times to numbered PNG files
func RenderAnimation(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet("frames") {
		cfg.Animation.Frames = ctx.Int("frames")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	j, err := newJob(cfg)
	if err != nil {
		return err
	}
	if !j.scene.Animated() {
		logger.Warningf("scene %q has no animated objects; all frames will match", j.scene.Name)
	}

	dir := ctx.String("out-dir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return xerrors.Errorf("while creating output directory: %w", err)
	}

	var writeErr error
	j.sink.OnFrame = func(frame int, img *image.RGBA) {
		if writeErr != nil {
			return
		}
		writeErr = writePNG(filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frame)), img)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := j.pipeline.RenderAnimation(runCtx, nil, cfg.FrameTimes())
	if xerrors.Is(err, renderer.ErrInterrupted) {
		logger.Warningf("animation interrupted after %d frames", len(stats))
	} else if err != nil {
		return xerrors.Errorf("while rendering animation: %w", err)
	}
	if writeErr != nil {
		return writeErr
	}

	displayFrameStats(stats, j.caster.Stats(), time.Since(start))
	return err
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("while creating %q: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return xerrors.Errorf("while encoding %q: %w", path, err)
	}
	return file.Close()
}
