package bitmap

import "errors"

// Sentinel errors for bitmap operations.
//
// Configuration errors are returned. Precondition violations (drawing code
// used outside its contract) panic with one of these values so that the
// failure is loud but still identifiable with errors.Is after recover.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	// ScaledByDimension also panics with it when asked to resample an
	// empty canvas to a non-empty size.
	ErrInvalidDimensions = errors.New("bitmap: invalid dimensions")

	// ErrSizeMismatch is returned when a backing slice does not hold
	// exactly width*height elements.
	ErrSizeMismatch = errors.New("bitmap: backing slice length does not match width*height")

	// ErrOutOfBounds is the panic value of Subimage when the requested
	// rectangle leaves the canvas.
	ErrOutOfBounds = errors.New("bitmap: rectangle out of bounds")

	// ErrBlendUnsupported is the panic value of compositing requested on a
	// pixel kind that has no blend (bit and byte canvases).
	ErrBlendUnsupported = errors.New("bitmap: compositing not supported for pixel kind")

	// ErrNoFont is the panic value of Write on a canvas without a font.
	ErrNoFont = errors.New("bitmap: no font set")

	// ErrInvalidScale is the panic value of Scaled for factors below 1.
	ErrInvalidScale = errors.New("bitmap: scale factor must be at least 1")
)
