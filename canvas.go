package bitmap

import (
	"image"
	"slices"
)

// Canvas is a width x height view over a Raster with drawing and
// transform operations.
//
// A canvas exclusively owns its raster unless it was built with Wrap,
// in which case the raster is shared with the caller.
type Canvas[T Pixel] struct {
	width  int
	height int
	raster *Raster[T]
	model  Model[T]

	// transparent holds the source values Draw skips.
	transparent []T

	font Typeface
}

// New creates a zero-filled canvas of the model's kind.
//
// Example:
//
//	mask := bitmap.New(bitmap.BitModel, 16, 16)
//	rgb := bitmap.New(bitmap.RGBModel, 320, 200)
func New[T Pixel](m Model[T], width, height int) *Canvas[T] {
	return Wrap(m, NewRaster[T](width, height))
}

// NewFilled creates a canvas with every pixel set to v.
func NewFilled[T Pixel](m Model[T], width, height int, v T) *Canvas[T] {
	c := New(m, width, height)
	c.Clear(v)
	return c
}

// Wrap creates a canvas over an existing raster. The raster is shared:
// drawing on the canvas writes to it.
func Wrap[T Pixel](m Model[T], r *Raster[T]) *Canvas[T] {
	return &Canvas[T]{
		width:  r.Width(),
		height: r.Height(),
		raster: r,
		model:  m,
	}
}

// Width returns the canvas width.
func (c *Canvas[T]) Width() int { return c.width }

// Height returns the canvas height.
func (c *Canvas[T]) Height() int { return c.height }

// Bounds returns the canvas dimensions as an image.Rectangle.
func (c *Canvas[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Model returns the pixel model of the canvas.
func (c *Canvas[T]) Model() Model[T] { return c.model }

// Kind returns the pixel kind of the canvas.
func (c *Canvas[T]) Kind() Kind { return c.model.Kind() }

// Raster returns the backing raster.
func (c *Canvas[T]) Raster() *Raster[T] { return c.raster }

// At returns the pixel at (x, y). The caller keeps (x, y) inside the canvas.
func (c *Canvas[T]) At(x, y int) T {
	return c.raster.At(x + y*c.width)
}

// SetPixel sets the pixel at (x, y). The caller keeps (x, y) inside the canvas.
func (c *Canvas[T]) SetPixel(x, y int, v T) {
	c.raster.Set(x+y*c.width, v)
}

// BlendPixel composites v over the pixel at (x, y) with the given opacity.
// Only RGB canvases composite; other kinds panic with ErrBlendUnsupported.
func (c *Canvas[T]) BlendPixel(x, y int, v T, alpha uint8) {
	c.mustBlend()
	c.paint(x+y*c.width, v, alpha)
}

// Clear sets every pixel to v.
func (c *Canvas[T]) Clear(v T) {
	pix := c.raster.Pix()
	for i := range pix {
		pix[i] = v
	}
}

// SetTransparent replaces the set of source values that Draw does not copy
// onto this canvas. Calling it with no values clears the set.
func (c *Canvas[T]) SetTransparent(values ...T) {
	c.transparent = slices.Clone(values)
}

// Transparent returns a copy of the transparent value set.
func (c *Canvas[T]) Transparent() []T {
	return slices.Clone(c.transparent)
}

func (c *Canvas[T]) isTransparent(v T) bool {
	for _, t := range c.transparent {
		if t == v {
			return true
		}
	}
	return false
}

// Equal reports whether other has the same kind, the same dimensions and
// identical pixels.
func (c *Canvas[T]) Equal(other *Canvas[T]) bool {
	if other == nil {
		return false
	}
	if c.Kind() != other.Kind() || c.width != other.width || c.height != other.height {
		return false
	}
	return slices.Equal(c.raster.Pix(), other.raster.Pix())
}
