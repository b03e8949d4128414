package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/labyrinth/grid"
)

// Raster geometry at scale 1, in pixels.
const (
	Stroke = 3
	Cell   = 15
	Margin = 15
)

// Walls is the read-only view of a maze the renderers need.
// *grid.Grid satisfies it.
type Walls interface {
	Width() int
	Height() int
	Wall(x, y int, d grid.Direction) bool
}

// Option customizes Image.
type Option func(*options)

type options struct {
	scale float64
}

// WithScale resizes the raster by f using Catmull-Rom resampling.
// Panics if f is not a positive finite number.
func WithScale(f float64) Option {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("render: WithScale(%g): scale must be positive", f))
	}
	return func(o *options) { o.scale = f }
}

// Size returns the raster dimensions of a width×height maze at scale 1.
func Size(width, height int) (int, int) {
	return 2*Margin + width*(Cell+Stroke) + Stroke,
		2*Margin + height*(Cell+Stroke) + Stroke
}

// Image draws w as black walls on white.
//
// Each cell owns the stroke band on its west and north side; the last column
// and row also draw their east and south walls. The pixel where two bands
// cross is black when any wall meeting there is closed.
//
// Complexity: O(pixels).
func Image(w Walls, opts ...Option) *image.Gray {
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}

	iw, ih := Size(w.Width(), w.Height())
	img := image.NewGray(image.Rect(0, 0, iw, ih))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	const pitch = Cell + Stroke
	for py := Margin; py < ih-Margin; py++ {
		yt := py - Margin
		inY := yt%pitch < Stroke
		yi, ydir, bottom := yt/pitch, grid.North, false
		if yi == w.Height() {
			yi, ydir, bottom = yi-1, grid.South, true
		}
		row := img.Pix[py*img.Stride:]
		for px := Margin; px < iw-Margin; px++ {
			xt := px - Margin
			inX := xt%pitch < Stroke
			if !inX && !inY {
				continue
			}
			xi, xdir, right := xt/pitch, grid.West, false
			if xi == w.Width() {
				xi, xdir, right = xi-1, grid.East, true
			}
			if stroke(w, xi, yi, xdir, ydir, inX, inY, right || bottom) {
				row[px] = 0
			}
		}
	}

	if o.scale == 1 {
		return img
	}
	sw, sh := int(float64(iw)*o.scale), int(float64(ih)*o.scale)
	scaled := image.NewGray(image.Rect(0, 0, max(sw, 1), max(sh, 1)))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}

// stroke reports whether a pixel in the stroke bands of cell (x,y) is black.
func stroke(w Walls, x, y int, xdir, ydir grid.Direction, inX, inY, border bool) bool {
	if inX && w.Wall(x, y, xdir) {
		return true
	}
	if inY && w.Wall(x, y, ydir) {
		return true
	}
	if border || !inX || !inY {
		return false
	}
	return (x > 0 && w.Wall(x-1, y, ydir)) || (y > 0 && w.Wall(x, y-1, xdir))
}

// PNG encodes Image(w, opts...) to out.
func PNG(out io.Writer, w Walls, opts ...Option) error {
	if err := png.Encode(out, Image(w, opts...)); err != nil {
		return fmt.Errorf("render.PNG: %w", err)
	}
	return nil
}
