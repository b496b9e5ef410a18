package font

import (
	"errors"
	"testing"

	"github.com/gogpu/bitmap"
)

// maskGlyph builds a mask glyph from rows of '#' (set) and '.' (clear).
func maskGlyph(rows ...string) bitmap.Glyph {
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	m := bitmap.New(bitmap.BitModel, w, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			m.SetPixel(x, y, row[x] == '#')
		}
	}
	return bitmap.Glyph{Mask: m}
}

// uniformFont returns a mask font of n glyphs, all w x h, with glyph i
// setting its top-left pixel only when i is odd.
func uniformFont(t *testing.T, n, w, h, letterSpacing, lineSpacing int) *Font {
	t.Helper()
	glyphs := make([]bitmap.Glyph, n)
	for i := range glyphs {
		m := bitmap.New(bitmap.BitModel, w, h)
		if i%2 == 1 && w > 0 && h > 0 {
			m.SetPixel(0, 0, true)
		}
		glyphs[i] = bitmap.Glyph{Mask: m}
	}
	f, err := New(EncodingMask, h, letterSpacing, lineSpacing, glyphs)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

// mustPanic runs fn and fails unless it panics with an error matching target.
func mustPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		err, _ := recover().(error)
		if !errors.Is(err, target) {
			t.Errorf("recovered %v, want %v", err, target)
		}
	}()
	fn()
}
