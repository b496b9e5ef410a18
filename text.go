package bitmap

// Glyph is the raster of one character: a 1-bit mask or an 8-bit
// gradient. Exactly one of the fields is set.
type Glyph struct {
	Mask     *Canvas[bool]
	Gradient *Canvas[uint8]
}

// Width returns the glyph width in pixels.
func (g Glyph) Width() int {
	switch {
	case g.Mask != nil:
		return g.Mask.Width()
	case g.Gradient != nil:
		return g.Gradient.Width()
	}
	return 0
}

// Typeface lays out text for Canvas.Write. The font package provides the
// implementation.
type Typeface interface {
	// Layout calls fn once per drawable character of text with its glyph
	// and the position of the glyph's top-left corner. The first line
	// starts at (x, y).
	Layout(text string, x, y int, fn func(g Glyph, gx, gy int))
}

// SetFont attaches a typeface to the canvas. The typeface is shared, not
// owned. Pass nil to detach it.
func (c *Canvas[T]) SetFont(f Typeface) {
	c.font = f
}

// Font returns the attached typeface, or nil.
func (c *Canvas[T]) Font() Typeface {
	return c.font
}

// Write renders text in color v with the first line's top-left corner at
// (x, y). Mask glyphs are painted with DrawMask and gradient glyphs with
// DrawGradient, so gradient fonts need an RGB canvas.
// It panics with ErrNoFont if no typeface is attached.
func (c *Canvas[T]) Write(text string, v T, x, y int, opts ...DrawOption) {
	if c.font == nil {
		panic(ErrNoFont)
	}
	c.font.Layout(text, x, y, func(g Glyph, gx, gy int) {
		switch {
		case g.Mask != nil:
			c.DrawMask(g.Mask, v, gx, gy, opts...)
		case g.Gradient != nil:
			c.DrawGradient(g.Gradient, v, gx, gy, opts...)
		}
	})
}
