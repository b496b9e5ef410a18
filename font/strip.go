package font

import (
	"fmt"

	"github.com/gogpu/bitmap"
)

// FromStrip builds a font from a glyph strip: an RGB image holding the
// glyphs side by side, left to right, starting at FirstRune.
//
// Row 0 marks boundaries: every pixel of the separator color (see
// WithSeparator) ends the glyph to its left and occupies one column.
// The last glyph runs to the right edge. The strip height is the glyph
// height. Mask glyphs take the black pixels; gradient glyphs take
// 0xFF minus the blue channel, so black ink on white paper yields full
// coverage.
func FromStrip(strip *bitmap.Canvas[bitmap.Color], opts ...Option) (*Font, error) {
	o := applyOptions(opts)
	if err := o.checkCount(); err != nil {
		return nil, err
	}

	height := strip.Height()
	if err := checkByte("height", height); err != nil {
		return nil, err
	}

	widths := stripWidths(strip, o.separator)
	if o.count == 0 {
		o.count = len(widths)
	}
	if o.count > len(widths) {
		return nil, fmt.Errorf("%w: %d glyphs, want %d", ErrStripTooShort, len(widths), o.count)
	}

	glyphs := make([]bitmap.Glyph, o.count)
	xOffset := 0
	for i := range glyphs {
		w := widths[i]
		if err := checkByte(fmt.Sprintf("glyph %d width", i), w); err != nil {
			return nil, err
		}

		cell := strip.Subimage(xOffset, 0, w, height)
		if o.encoding == EncodingGradient {
			g := bitmap.New(bitmap.ByteModel, w, height)
			for p, c := range cell.Raster().Pix() {
				g.Raster().Set(p, 0xff-c.B())
			}
			glyphs[i] = bitmap.Glyph{Gradient: g}
		} else {
			m := bitmap.New(bitmap.BitModel, w, height)
			for p, c := range cell.Raster().Pix() {
				m.Raster().Set(p, c == bitmap.Black)
			}
			glyphs[i] = bitmap.Glyph{Mask: m}
		}

		xOffset += w + 1
	}

	f, err := New(o.encoding, height, o.letterSpacing, o.lineSpacing, glyphs)
	if err != nil {
		return nil, err
	}

	bitmap.Logger().Debug("strip imported",
		"encoding", f.encoding,
		"glyphs", f.Len(),
		"height", f.height)
	return f, nil
}

// stripWidths returns the glyph widths marked in row 0 of strip.
func stripWidths(strip *bitmap.Canvas[bitmap.Color], separator bitmap.Color) []int {
	if strip.Width() == 0 || strip.Height() == 0 {
		return nil
	}
	var widths []int
	last := -1
	for x := 0; x < strip.Width(); x++ {
		if strip.At(x, 0) == separator {
			widths = append(widths, x-last-1)
			last = x
		}
	}
	return append(widths, strip.Width()-1-last)
}
