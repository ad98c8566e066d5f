package raytrace

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidSize = errors.New("image size must be positive")

type Options struct {
	Width    int
	Height   int
	MaxDepth int
	// Workers bounds the number of columns traced at once. Zero means
	// one per CPU.
	Workers int
	// Progress, when set, is called after every finished column. It may be
	// called from several goroutines.
	Progress func(done, total int)
}

func DefaultOptions() Options {
	return Options{Width: 400, Height: 300, MaxDepth: 5}
}

// Render traces one primary ray per pixel through a screen on the z=0 plane.
// The screen spans x in [-1, 1] and keeps the image aspect ratio, shifted up
// by a quarter unit.
func Render(ctx context.Context, scene *Scene, opts Options) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", opts.Width, opts.Height, ErrInvalidSize)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	aspect := float64(opts.Width) / float64(opts.Height)
	x0, x1 := -1.0, 1.0
	y0, y1 := -1/aspect+.25, 1/aspect+.25

	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Width; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x := lerpStep(x0, x1, i, opts.Width)
			for j := 0; j < opts.Height; j++ {
				y := lerpStep(y0, y1, j, opts.Height)
				dir := mgl64.Vec3{x, y, 0}.Sub(scene.Camera).Normalize()
				c := scene.Trace(Ray{Origin: scene.Camera, Direction: dir}, opts.MaxDepth)
				// Row 0 is the top of the image; j runs bottom-up.
				img.SetNRGBA(i, opts.Height-j-1, toNRGBA(c))
			}
			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), opts.Width)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// lerpStep returns the i-th of n evenly spaced values from lo to hi,
// both ends included.
func lerpStep(lo, hi float64, i, n int) float64 {
	if n == 1 {
		return lo
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}

func toNRGBA(c mgl64.Vec3) color.NRGBA {
	return color.NRGBA{R: channel(c.X()), G: channel(c.Y()), B: channel(c.Z()), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(mgl64.Clamp(v, 0, 1) * 255))
}
