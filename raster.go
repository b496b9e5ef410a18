package bitmap

// Raster is a flat, index-addressed pixel store of one element kind.
//
// Pixels are laid out row by row: the pixel at (x, y) lives at index
// x + y*width. At and Set do not check the index beyond what the Go
// runtime does; the owning Canvas keeps indices in range. Values are
// stored as given, without clamping.
type Raster[T Pixel] struct {
	width  int
	height int
	pix    []T
}

// NewRaster allocates a zeroed raster with the given dimensions.
// It panics with ErrInvalidDimensions if width or height is negative.
func NewRaster[T Pixel](width, height int) *Raster[T] {
	if width < 0 || height < 0 {
		panic(ErrInvalidDimensions)
	}
	return &Raster[T]{
		width:  width,
		height: height,
		pix:    make([]T, width*height),
	}
}

// WrapRaster creates a raster over existing pixel data without copying.
// The slice must hold exactly width*height elements.
func WrapRaster[T Pixel](width, height int, pix []T) (*Raster[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) != width*height {
		return nil, ErrSizeMismatch
	}
	return &Raster[T]{
		width:  width,
		height: height,
		pix:    pix,
	}, nil
}

// Width returns the raster width in pixels.
func (r *Raster[T]) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster[T]) Height() int {
	return r.height
}

// Len returns the number of pixels, width*height.
func (r *Raster[T]) Len() int {
	return len(r.pix)
}

// At returns the pixel at linear index i.
func (r *Raster[T]) At(i int) T {
	return r.pix[i]
}

// Set stores v at linear index i.
func (r *Raster[T]) Set(i int, v T) {
	r.pix[i] = v
}

// Pix returns the backing slice. Writes through it are visible to the
// raster and to every canvas wrapping it.
func (r *Raster[T]) Pix() []T {
	return r.pix
}
