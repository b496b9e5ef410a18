package bitmap

// Kind identifies the element type stored in a Raster.
type Kind uint8

const (
	// KindBit stores one bool per pixel (1-bit masks).
	KindBit Kind = iota

	// KindByte stores one uint8 per pixel (gradient and alpha masks).
	KindByte

	// KindRGB stores one 24-bit Color per pixel, packed as 0xRRGGBB.
	KindRGB

	// kindCount is the number of kinds (for internal use).
	kindCount
)

// KindInfo contains metadata about a pixel kind.
type KindInfo struct {
	// Name is a short lowercase name used in messages.
	Name string

	// BitsPerPixel is the number of significant bits per pixel.
	BitsPerPixel int

	// Blendable reports whether alpha compositing and tinting are defined.
	Blendable bool
}

var kindInfoTable = [kindCount]KindInfo{
	KindBit: {
		Name:         "bit",
		BitsPerPixel: 1,
		Blendable:    false,
	},
	KindByte: {
		Name:         "byte",
		BitsPerPixel: 8,
		Blendable:    false,
	},
	KindRGB: {
		Name:         "rgb",
		BitsPerPixel: 24,
		Blendable:    true,
	},
}

// Info returns the KindInfo for this kind.
// Returns a zero KindInfo if the kind is invalid.
func (k Kind) Info() KindInfo {
	if !k.IsValid() {
		return KindInfo{}
	}
	return kindInfoTable[k]
}

// IsValid returns true if the kind is a known value.
func (k Kind) IsValid() bool {
	return k < kindCount
}

// String returns the kind name.
func (k Kind) String() string {
	if !k.IsValid() {
		return "unknown"
	}
	return kindInfoTable[k].Name
}
