package font

import (
	"errors"
	"testing"

	"github.com/gogpu/bitmap"
)

func TestEncodingString(t *testing.T) {
	if EncodingMask.String() != "mask" || EncodingGradient.String() != "gradient" {
		t.Error("unexpected encoding names")
	}
	if Encoding(9).IsValid() {
		t.Error("Encoding(9).IsValid() = true")
	}
	if got := Encoding(9).String(); got != "Encoding(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		encoding Encoding
		height   int
		glyphs   []bitmap.Glyph
		want     error
	}{
		{"unknown_encoding", Encoding(7), 1, nil, ErrUnknownEncoding},
		{"wrong_kind", EncodingGradient, 1, []bitmap.Glyph{maskGlyph("#")}, ErrInvalidGlyph},
		{"empty_glyph", EncodingMask, 1, []bitmap.Glyph{{}}, ErrInvalidGlyph},
		{"wrong_height", EncodingMask, 2, []bitmap.Glyph{maskGlyph("#")}, ErrInvalidGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.encoding, tt.height, 0, 0, tt.glyphs); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMonospaced(t *testing.T) {
	mono, err := New(EncodingMask, 1, 0, 0, []bitmap.Glyph{maskGlyph("##"), maskGlyph(".#"), maskGlyph("#.")})
	if err != nil {
		t.Fatal(err)
	}
	if !mono.IsMonospaced() {
		t.Error("equal widths: IsMonospaced() = false")
	}

	prop, err := New(EncodingMask, 1, 0, 0, []bitmap.Glyph{maskGlyph("##"), maskGlyph("#"), maskGlyph("##")})
	if err != nil {
		t.Fatal(err)
	}
	if prop.IsMonospaced() {
		t.Error("different widths: IsMonospaced() = true")
	}
}

func TestGlyphRange(t *testing.T) {
	f := uniformFont(t, 95, 2, 2, 1, 1)

	if !f.Covers(' ') || !f.Covers('~') {
		t.Error("printable ASCII not covered")
	}
	if f.Covers('\t') || f.Covers(0x7f) {
		t.Error("characters outside the font reported as covered")
	}

	mustPanic(t, ErrRuneRange, func() { f.Glyph('\t') })
	mustPanic(t, ErrRuneRange, func() { f.Glyph(0x7f) })
	mustPanic(t, ErrRuneRange, func() { f.Glyph('\u00e9') })
}

func TestSpacingSetters(t *testing.T) {
	f := uniformFont(t, 1, 1, 1, 0, 0)
	f.SetLetterSpacing(3)
	f.SetLineSpacing(5)
	if f.LetterSpacing() != 3 || f.LineSpacing() != 5 {
		t.Errorf("spacing = %d/%d, want 3/5", f.LetterSpacing(), f.LineSpacing())
	}
}

func TestScaled(t *testing.T) {
	src, err := New(EncodingMask, 2, 1, 2, []bitmap.Glyph{
		maskGlyph("#.", ".#"),
		maskGlyph("#", "."),
	})
	if err != nil {
		t.Fatal(err)
	}

	got := src.Scaled(3, 2)
	if got.Height() != 4 || got.LetterSpacing() != 3 || got.LineSpacing() != 4 {
		t.Errorf("scaled metrics = height %d, spacing %d/%d; want 4, 3/4",
			got.Height(), got.LetterSpacing(), got.LineSpacing())
	}
	if got.Len() != 2 || got.Encoding() != EncodingMask || got.IsMonospaced() {
		t.Errorf("scaled font = %d glyphs, %v, monospaced %v", got.Len(), got.Encoding(), got.IsMonospaced())
	}
	for _, r := range []rune{' ', '!'} {
		want := src.Glyph(r).Mask.Scaled(3, 2)
		if !got.Glyph(r).Mask.Equal(want) {
			t.Errorf("glyph %q is not the scaled source glyph", r)
		}
	}

	// The source font is unaffected.
	if src.Height() != 2 || src.Glyph(' ').Width() != 2 {
		t.Error("Scaled modified the source font")
	}
}

func TestScaledGradient(t *testing.T) {
	g := bitmap.NewFilled(bitmap.ByteModel, 2, 1, 90)
	src, err := New(EncodingGradient, 1, 0, 0, []bitmap.Glyph{{Gradient: g}})
	if err != nil {
		t.Fatal(err)
	}
	got := src.Scaled(2, 2)
	if w := got.RuneWidth(' '); w != 4 {
		t.Errorf("scaled width = %d, want 4", w)
	}
	if !got.IsMonospaced() {
		t.Error("scaled single-glyph font is not monospaced")
	}
}

func TestScaledInvalid(t *testing.T) {
	f := uniformFont(t, 1, 1, 1, 0, 0)
	mustPanic(t, bitmap.ErrInvalidScale, func() { f.Scaled(0, 1) })
}

func TestTypedGlyphs(t *testing.T) {
	mask := uniformFont(t, 2, 1, 1, 0, 0)
	if mask.MaskGlyph('!') == nil || mask.GradientGlyph('!') != nil {
		t.Error("mask font: unexpected typed glyphs")
	}

	grad, err := New(EncodingGradient, 1, 0, 0, []bitmap.Glyph{{Gradient: bitmap.New(bitmap.ByteModel, 1, 1)}})
	if err != nil {
		t.Fatal(err)
	}
	if grad.GradientGlyph(' ') == nil || grad.MaskGlyph(' ') != nil {
		t.Error("gradient font: unexpected typed glyphs")
	}
}
