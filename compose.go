package bitmap

// sampler returns the value to paint for source pixel (sx, sy), or false
// to leave the destination pixel untouched.
type sampler[T Pixel] func(sx, sy int) (T, bool)

// compose is the single entry point behind Fill, Draw, DrawMask and
// DrawGradient. It visits the intersection of the canvas with the
// sw x sh source placed at (x, y) and paints what sample returns.
func (c *Canvas[T]) compose(sw, sh, x, y int, o drawOptions, sample sampler[T]) {
	if o.alpha != 255 {
		c.mustBlend()
	}

	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+sw, c.width), min(y+sh, c.height)

	for yy := y0; yy < y1; yy++ {
		row := yy * c.width
		for xx := x0; xx < x1; xx++ {
			v, ok := sample(xx-x, yy-y)
			if !ok {
				continue
			}
			c.paint(row+xx, v, o.alpha)
		}
	}
}

// paint writes v at linear index i, compositing unless alpha is 255.
func (c *Canvas[T]) paint(i int, v T, alpha uint8) {
	if alpha == 255 {
		c.raster.Set(i, v)
		return
	}
	c.raster.Set(i, c.model.Blend(v, c.raster.At(i), alpha))
}

func (c *Canvas[T]) mustBlend() {
	if k := c.Kind(); !k.Info().Blendable {
		panic(unsupported(k))
	}
}

// Fill paints the rectangle with inclusive corners (x0, y0) and (x1, y1).
// The rectangle is clamped to the canvas; a rectangle entirely outside
// it paints nothing.
func (c *Canvas[T]) Fill(x0, y0, x1, y1 int, v T, opts ...DrawOption) {
	c.compose(x1-x0+1, y1-y0+1, x0, y0, applyDrawOptions(opts), func(int, int) (T, bool) {
		return v, true
	})
}

// Draw copies src onto the canvas with its top-left corner at (x, y).
// Source values in the canvas's transparent set are skipped.
func (c *Canvas[T]) Draw(src *Canvas[T], x, y int, opts ...DrawOption) {
	c.compose(src.width, src.height, x, y, applyDrawOptions(opts), func(sx, sy int) (T, bool) {
		v := src.At(sx, sy)
		return v, !c.isTransparent(v)
	})
}

// DrawMask paints v wherever mask is true, with the mask's top-left
// corner at (x, y).
func (c *Canvas[T]) DrawMask(mask *Canvas[bool], v T, x, y int, opts ...DrawOption) {
	c.compose(mask.width, mask.height, x, y, applyDrawOptions(opts), func(sx, sy int) (T, bool) {
		return v, mask.At(sx, sy)
	})
}

// DrawGradient paints v scaled by g/255 for every gradient value g, with
// the gradient's top-left corner at (x, y). Only RGB canvases support it.
func (c *Canvas[T]) DrawGradient(grad *Canvas[uint8], v T, x, y int, opts ...DrawOption) {
	c.mustBlend()
	c.compose(grad.width, grad.height, x, y, applyDrawOptions(opts), func(sx, sy int) (T, bool) {
		return c.model.Tint(v, grad.At(sx, sy)), true
	})
}
