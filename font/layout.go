package font

import (
	"fmt"
	"strings"

	"github.com/gogpu/bitmap"
)

var _ bitmap.Typeface = (*Font)(nil)

// Layout implements bitmap.Typeface. It calls fn for every character of
// text except newlines, with the glyph's top-left corner. A newline
// returns to x and moves down by Height()+LineSpacing().
// Every character maps to the glyph of its own code point; text is not
// normalized, so a base letter followed by a combining mark is laid out
// as two glyphs.
//
// It panics with an error wrapping ErrRuneRange for characters the font
// does not cover.
func (f *Font) Layout(text string, x, y int, fn func(g bitmap.Glyph, gx, gy int)) {
	gx, gy := x, y
	for _, r := range text {
		if r == '\n' {
			gx = x
			gy += f.height + f.lineSpacing
			continue
		}
		g := f.Glyph(r)
		fn(g, gx, gy)
		gx += g.Width() + f.letterSpacing
	}
}

// WidthOf returns the width of the widest line of text: the glyph widths
// plus letter spacing between characters.
func (f *Font) WidthOf(text string) int {
	width := 0
	for _, line := range strings.Split(text, "\n") {
		width = max(width, f.lineWidth(line))
	}
	return width
}

func (f *Font) lineWidth(line string) int {
	if line == "" {
		return 0
	}
	w := 0
	for _, r := range line {
		w += f.Glyph(r).Width() + f.letterSpacing
	}
	return w - f.letterSpacing
}

// Check returns an error wrapping ErrRuneRange for the first character
// of text, other than a newline, that the font has no glyph for. Text
// that passes can be given to Layout, WidthOf and bitmap.Canvas.Write.
func (f *Font) Check(text string) error {
	for i, r := range text {
		if r != '\n' && !f.Covers(r) {
			return fmt.Errorf("%w: %q at byte %d", ErrRuneRange, r, i)
		}
	}
	return nil
}

// RuneWidth returns the width of the glyph for r, without spacing.
func (f *Font) RuneWidth(r rune) int {
	return f.Glyph(r).Width()
}

// HeightOf returns the height of text: one line plus Height()+LineSpacing()
// per newline.
func (f *Font) HeightOf(text string) int {
	return f.height + strings.Count(text, "\n")*(f.height+f.lineSpacing)
}
