package font

import (
	"fmt"

	"github.com/gogpu/bitmap"
)

// FirstRune is the character of glyph 0. Glyph i renders FirstRune+i.
const FirstRune = ' '

// Encoding is the glyph pixel encoding of a font.
type Encoding uint8

const (
	// EncodingMask stores 1-bit glyphs.
	EncodingMask Encoding = 0

	// EncodingGradient stores 8-bit glyphs.
	EncodingGradient Encoding = 1
)

// IsValid reports whether e is a known encoding.
func (e Encoding) IsValid() bool {
	return e == EncodingMask || e == EncodingGradient
}

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingMask:
		return "mask"
	case EncodingGradient:
		return "gradient"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// Font is a set of glyph rasters for the characters FirstRune to
// FirstRune+Len()-1.
type Font struct {
	encoding Encoding

	// Exactly one of masks and gradients is used, per encoding.
	masks     []*bitmap.Canvas[bool]
	gradients []*bitmap.Canvas[uint8]

	height        int
	letterSpacing int
	lineSpacing   int
	monospaced    bool
}

// New creates a font from glyphs. Every glyph must carry a raster of the
// given encoding and the given height. The font takes ownership of the
// glyph rasters.
func New(encoding Encoding, height, letterSpacing, lineSpacing int, glyphs []bitmap.Glyph) (*Font, error) {
	if !encoding.IsValid() {
		return nil, ErrUnknownEncoding
	}
	f := &Font{
		encoding:      encoding,
		height:        height,
		letterSpacing: letterSpacing,
		lineSpacing:   lineSpacing,
	}
	for i, g := range glyphs {
		var h int
		switch {
		case encoding == EncodingMask && g.Mask != nil:
			f.masks = append(f.masks, g.Mask)
			h = g.Mask.Height()
		case encoding == EncodingGradient && g.Gradient != nil:
			f.gradients = append(f.gradients, g.Gradient)
			h = g.Gradient.Height()
		default:
			return nil, fmt.Errorf("%w: glyph %d has no %s raster", ErrInvalidGlyph, i, encoding)
		}
		if h != height {
			return nil, fmt.Errorf("%w: glyph %d height %d, want %d", ErrInvalidGlyph, i, h, height)
		}
	}
	f.monospaced = f.checkMonospaced()
	return f, nil
}

func (f *Font) checkMonospaced() bool {
	n := f.Len()
	if n == 0 {
		return true
	}
	w := f.glyphAt(0).Width()
	for i := 1; i < n; i++ {
		if f.glyphAt(i).Width() != w {
			return false
		}
	}
	return true
}

// Encoding returns the glyph encoding.
func (f *Font) Encoding() Encoding { return f.encoding }

// Len returns the number of glyphs.
func (f *Font) Len() int {
	if f.encoding == EncodingMask {
		return len(f.masks)
	}
	return len(f.gradients)
}

// Height returns the glyph height shared by all glyphs.
func (f *Font) Height() int { return f.height }

// LetterSpacing returns the horizontal gap between characters.
func (f *Font) LetterSpacing() int { return f.letterSpacing }

// SetLetterSpacing sets the horizontal gap between characters.
func (f *Font) SetLetterSpacing(spacing int) { f.letterSpacing = spacing }

// LineSpacing returns the vertical gap between lines.
func (f *Font) LineSpacing() int { return f.lineSpacing }

// SetLineSpacing sets the vertical gap between lines.
func (f *Font) SetLineSpacing(spacing int) { f.lineSpacing = spacing }

// IsMonospaced reports whether every glyph has the width of the first.
func (f *Font) IsMonospaced() bool { return f.monospaced }

// Covers reports whether the font has a glyph for r.
func (f *Font) Covers(r rune) bool {
	i := int(r - FirstRune)
	return i >= 0 && i < f.Len()
}

// Glyph returns the glyph for r.
// It panics with an error wrapping ErrRuneRange if the font does not
// cover r.
func (f *Font) Glyph(r rune) bitmap.Glyph {
	if !f.Covers(r) {
		panic(fmt.Errorf("%w: %q", ErrRuneRange, r))
	}
	return f.glyphAt(int(r - FirstRune))
}

// MaskGlyph returns the mask raster for r, or nil when the font uses the
// gradient encoding. It panics like Glyph.
func (f *Font) MaskGlyph(r rune) *bitmap.Canvas[bool] {
	return f.Glyph(r).Mask
}

// GradientGlyph returns the gradient raster for r, or nil when the font
// uses the mask encoding. It panics like Glyph.
func (f *Font) GradientGlyph(r rune) *bitmap.Canvas[uint8] {
	return f.Glyph(r).Gradient
}

func (f *Font) glyphAt(i int) bitmap.Glyph {
	if f.encoding == EncodingMask {
		return bitmap.Glyph{Mask: f.masks[i]}
	}
	return bitmap.Glyph{Gradient: f.gradients[i]}
}

// Scaled returns a new font with every glyph enlarged by integer factors.
// Letter spacing scales with xScale; height and line spacing with yScale.
// It panics with bitmap.ErrInvalidScale if a factor is below 1.
func (f *Font) Scaled(xScale, yScale int) *Font {
	if xScale < 1 || yScale < 1 {
		panic(bitmap.ErrInvalidScale)
	}
	result := &Font{
		encoding:      f.encoding,
		height:        f.height * yScale,
		letterSpacing: f.letterSpacing * xScale,
		lineSpacing:   f.lineSpacing * yScale,
	}
	for _, m := range f.masks {
		result.masks = append(result.masks, m.Scaled(xScale, yScale))
	}
	for _, g := range f.gradients {
		result.gradients = append(result.gradients, g.Scaled(xScale, yScale))
	}
	result.monospaced = result.checkMonospaced()
	return result
}
