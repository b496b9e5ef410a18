package bitmap

import (
	"fmt"

	"github.com/gogpu/bitmap/internal/blend"
)

// Pixel is the set of element types a Raster can hold.
type Pixel interface {
	bool | uint8 | Color
}

// Model supplies the per-kind behavior of a Canvas. Every canvas owns
// its model and uses it as a factory for transform results, so a
// transformed canvas always has the kind of its source.
//
// Only the RGB model composites. The bit and byte models panic with
// ErrBlendUnsupported from Blend and Tint.
//
// The set of models is closed: use BitModel, ByteModel or RGBModel.
type Model[T Pixel] interface {
	// Kind returns the pixel kind handled by the model.
	Kind() Kind

	// Blend composites src over dst with the given opacity.
	Blend(src, dst T, alpha uint8) T

	// Tint scales v by level/255, per channel.
	Tint(v T, level uint8) T

	model()
}

// Models for the three pixel kinds.
var (
	BitModel  Model[bool]  = bitModel{}
	ByteModel Model[uint8] = byteModel{}
	RGBModel  Model[Color] = rgbModel{}
)

func unsupported(k Kind) error {
	return fmt.Errorf("%w: %s", ErrBlendUnsupported, k)
}

type bitModel struct{}

func (bitModel) Kind() Kind                    { return KindBit }
func (bitModel) Blend(_, _ bool, _ uint8) bool { panic(unsupported(KindBit)) }
func (bitModel) Tint(_ bool, _ uint8) bool     { panic(unsupported(KindBit)) }
func (bitModel) model()                        {}

type byteModel struct{}

func (byteModel) Kind() Kind                { return KindByte }
func (byteModel) Blend(_, _, _ uint8) uint8 { panic(unsupported(KindByte)) }
func (byteModel) Tint(_, _ uint8) uint8     { panic(unsupported(KindByte)) }
func (byteModel) model()                    {}

type rgbModel struct{}

func (rgbModel) Kind() Kind { return KindRGB }

func (rgbModel) Blend(src, dst Color, alpha uint8) Color {
	return Color(blend.RGB(uint32(src), uint32(dst), alpha))
}

func (rgbModel) Tint(v Color, level uint8) Color {
	return Color(blend.Tint(uint32(v), level))
}

func (rgbModel) model() {}
