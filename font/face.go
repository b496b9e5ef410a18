package font

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/bitmap"
)

// FromFace rasterizes a golang.org/x/image face into a font.
//
// Each glyph is as wide as the rune's advance rounded up and as tall as
// the face's ascent plus descent. Runes the face lacks get zero-width
// glyphs. Mask glyphs set the pixels whose coverage reaches the
// threshold; gradient glyphs keep the coverage.
func FromFace(face xfont.Face, opts ...Option) (*Font, error) {
	o := applyOptions(opts)
	if err := o.checkCount(); err != nil {
		return nil, err
	}
	if o.count == 0 {
		o.count = asciiGlyphs
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if err := checkByte("height", height); err != nil {
		return nil, err
	}

	glyphs := make([]bitmap.Glyph, o.count)
	for i := range glyphs {
		r := FirstRune + rune(i)

		width := 0
		adv, ok := face.GlyphAdvance(r)
		if ok {
			width = adv.Ceil()
		}
		if err := checkByte(fmt.Sprintf("width of %q", r), width); err != nil {
			return nil, err
		}

		dst := image.NewAlpha(image.Rect(0, 0, width, height))
		if ok && width > 0 {
			d := xfont.Drawer{
				Dst:  dst,
				Src:  image.Opaque,
				Face: face,
				Dot:  fixed.P(0, ascent),
			}
			d.DrawString(string(r))
		}
		glyphs[i] = o.glyphFromAlpha(dst)
	}

	f, err := New(o.encoding, height, o.letterSpacing, o.lineSpacing, glyphs)
	if err != nil {
		return nil, err
	}

	bitmap.Logger().Debug("face imported",
		"encoding", f.encoding,
		"glyphs", f.Len(),
		"height", f.height,
		"monospaced", f.monospaced)
	return f, nil
}

// glyphFromAlpha converts rasterized coverage into a glyph of the
// configured encoding.
func (o *options) glyphFromAlpha(a *image.Alpha) bitmap.Glyph {
	w, h := a.Rect.Dx(), a.Rect.Dy()
	if o.encoding == EncodingGradient {
		g := bitmap.New(bitmap.ByteModel, w, h)
		for y := 0; y < h; y++ {
			copy(g.Raster().Pix()[y*w:(y+1)*w], a.Pix[y*a.Stride:y*a.Stride+w])
		}
		return bitmap.Glyph{Gradient: g}
	}

	m := bitmap.New(bitmap.BitModel, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetPixel(x, y, a.AlphaAt(x, y).A >= o.threshold)
		}
	}
	return bitmap.Glyph{Mask: m}
}

// FromOpenType rasterizes TrueType or OpenType font data at the given
// size in points (72 DPI, so one point is one pixel).
func FromOpenType(data []byte, size float64, opts ...Option) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse opentype: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: create face: %w", err)
	}
	defer func() { _ = face.Close() }()

	return FromFace(face, opts...)
}

// FromTrueType is FromOpenType with the freetype rasterizer. It reads
// TrueType outlines only, and its antialiasing differs slightly from the
// x/image rasterizer.
func FromTrueType(data []byte, size float64, opts ...Option) (*Font, error) {
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse truetype: %w", err)
	}

	face := truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	defer func() { _ = face.Close() }()

	return FromFace(face, opts...)
}

// Basic returns a monospaced 7x13 mask font of printable ASCII, built from
// golang.org/x/image/font/basicfont. Every call returns a new font.
func Basic() *Font {
	f, err := FromFace(basicfont.Face7x13)
	if err != nil {
		panic(err)
	}
	return f
}
