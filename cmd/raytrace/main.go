package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/gekko3d/spincube"
	"github.com/gekko3d/spincube/raytrace"
)

func main() {
	defaults := raytrace.DefaultOptions()
	out := flag.String("out", "fig.png", "Output PNG file")
	width := flag.Int("width", defaults.Width, "Image width")
	height := flag.Int("height", defaults.Height, "Image height")
	depth := flag.Int("depth", defaults.MaxDepth, "Maximum number of reflections")
	workers := flag.Int("workers", 0, "Columns traced in parallel (0: one per CPU)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := spincube.NewDefaultLogger("raytrace", *debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, *out, raytrace.Options{
		Width:    *width,
		Height:   *height,
		MaxDepth: *depth,
		Workers:  *workers,
		Progress: func(done, total int) {
			if done%10 == 0 {
				logger.Debugf("%.1f%%", float64(done)/float64(total)*100)
			}
		},
	}); err != nil {
		logger.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger spincube.Logger, path string, opts raytrace.Options) error {
	img, err := raytrace.Render(ctx, raytrace.DefaultScene(), opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Infof("wrote %s (%dx%d)", path, opts.Width, opts.Height)
	return nil
}
