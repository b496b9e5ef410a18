package bitmap

// DrawOption configures a drawing call (Fill, Draw, DrawMask,
// DrawGradient, Write).
//
// Example:
//
//	// Opaque copy
//	c.Draw(sprite, 10, 10)
//
//	// Half-transparent copy
//	c.Draw(sprite, 10, 10, bitmap.WithAlpha(128))
type DrawOption func(*drawOptions)

// drawOptions holds optional configuration for a drawing call.
type drawOptions struct {
	alpha uint8
}

// defaultDrawOptions returns the default drawing options: opaque overwrite.
func defaultDrawOptions() drawOptions {
	return drawOptions{
		alpha: 255,
	}
}

// WithAlpha sets the opacity used to composite painted pixels.
// 255 (the default) overwrites the destination; any other value
// composites and is only supported on RGB canvases.
func WithAlpha(alpha uint8) DrawOption {
	return func(o *drawOptions) {
		o.alpha = alpha
	}
}

func applyDrawOptions(opts []DrawOption) drawOptions {
	o := defaultDrawOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
