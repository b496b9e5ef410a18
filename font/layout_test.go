package font

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/bitmap"
)

func TestWidthOf(t *testing.T) {
	f := uniformFont(t, 95, 5, 7, 1, 2)

	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"A", 5},
		{"AAA", 17},
		{"AA\nAAA", 17},
		{"AAA\nA", 17},
		{"\n", 0},
		{"A\n", 5},
	}

	for _, tt := range tests {
		if got := f.WidthOf(tt.text); got != tt.want {
			t.Errorf("WidthOf(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestWidthOfProportional(t *testing.T) {
	f, err := New(EncodingMask, 1, 2, 0, []bitmap.Glyph{
		maskGlyph("."),     // ' '
		maskGlyph("###"),   // '!'
		maskGlyph("#####"), // '"'
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := f.WidthOf(` !"`); got != 1+2+3+2+5 {
		t.Errorf("WidthOf = %d, want 13", got)
	}
	if got := f.RuneWidth('!'); got != 3 {
		t.Errorf("RuneWidth('!') = %d, want 3", got)
	}
}

func TestHeightOf(t *testing.T) {
	f := uniformFont(t, 95, 5, 7, 1, 2)

	tests := []struct {
		text string
		want int
	}{
		{"", 7},
		{"abc", 7},
		{"a\nb", 7 + 9},
		{"a\nb\n", 7 + 2*9},
	}

	for _, tt := range tests {
		if got := f.HeightOf(tt.text); got != tt.want {
			t.Errorf("HeightOf(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

type placement struct {
	Width, X, Y int
}

func collect(f *Font, text string, x, y int) []placement {
	var got []placement
	f.Layout(text, x, y, func(g bitmap.Glyph, gx, gy int) {
		got = append(got, placement{Width: g.Width(), X: gx, Y: gy})
	})
	return got
}

func TestLayout(t *testing.T) {
	f := uniformFont(t, 95, 4, 6, 1, 3)

	got := collect(f, "ab\nc", 10, 20)
	want := []placement{
		{4, 10, 20},
		{4, 15, 20},
		{4, 10, 29},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

// TestLayoutCodePoints verifies that every code point selects its own
// glyph: combining sequences are not composed and compatibility
// characters are not replaced.
func TestLayoutCodePoints(t *testing.T) {
	n := int('\u0301'-FirstRune) + 1
	f := uniformFont(t, n, 3, 3, 1, 1)

	type placed struct {
		mask   *bitmap.Canvas[bool]
		gx, gy int
	}
	var got []placed
	f.Layout("e\u0301\u00e9", 0, 0, func(g bitmap.Glyph, gx, gy int) {
		got = append(got, placed{g.Mask, gx, gy})
	})
	want := []placed{
		{f.Glyph('e').Mask, 0, 0},
		{f.Glyph('\u0301').Mask, 4, 0},
		{f.Glyph('\u00e9').Mask, 8, 0},
	}
	if len(got) != len(want) {
		t.Fatalf("laid out %d glyphs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("glyph %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if w := f.WidthOf("e\u0301"); w != 7 {
		t.Errorf("WidthOf(combining sequence) = %d, want 7", w)
	}

	// U+037E is canonically equivalent to ';' but is not in the font.
	basic := Basic()
	mustPanic(t, ErrRuneRange, func() { basic.WidthOf("\u037e") })
	mustPanic(t, ErrRuneRange, func() {
		basic.Layout("\u037e", 0, 0, func(bitmap.Glyph, int, int) {})
	})
}

func TestCheck(t *testing.T) {
	f := Basic()

	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"empty", "", true},
		{"ascii", "Hello, world!", true},
		{"newlines", "a\nb\n", true},
		{"tab", "a\tb", false},
		{"accent", "h\u00e9llo", false},
		{"greek_question_mark", "\u037e", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.Check(tt.text)
			if tt.ok && err != nil {
				t.Errorf("Check(%q) error = %v, want nil", tt.text, err)
			}
			if !tt.ok && !errors.Is(err, ErrRuneRange) {
				t.Errorf("Check(%q) error = %v, want ErrRuneRange", tt.text, err)
			}
		})
	}
}

func TestLayoutOutOfRangePanics(t *testing.T) {
	f := uniformFont(t, 95, 1, 1, 0, 0)
	mustPanic(t, ErrRuneRange, func() {
		f.Layout("a\tb", 0, 0, func(bitmap.Glyph, int, int) {})
	})
}

func TestCanvasWrite(t *testing.T) {
	f, err := New(EncodingMask, 2, 1, 1, []bitmap.Glyph{
		maskGlyph("..", ".."), // ' '
		maskGlyph("#.", ".#"), // '!'
	})
	if err != nil {
		t.Fatal(err)
	}

	c := bitmap.NewFilled(bitmap.RGBModel, 6, 6, bitmap.Black)
	c.SetFont(f)
	c.Write("! !\n!", bitmap.Red, 0, 0)

	var got [][2]int
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if c.At(x, y) == bitmap.Red {
				got = append(got, [2]int{x, y})
			}
		}
	}
	// Glyphs start at x = 0, 3, 6 on the first line and x = 0 three rows down;
	// the third glyph falls outside the canvas.
	want := [][2]int{{0, 0}, {1, 1}, {0, 3}, {1, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("painted pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestCanvasWriteGradientAlpha(t *testing.T) {
	g := bitmap.NewFilled(bitmap.ByteModel, 1, 1, 255)
	f, err := New(EncodingGradient, 1, 0, 0, []bitmap.Glyph{{Gradient: g}})
	if err != nil {
		t.Fatal(err)
	}

	c := bitmap.NewFilled(bitmap.RGBModel, 1, 1, bitmap.Black)
	c.SetFont(f)
	c.Write(" ", bitmap.White, 0, 0, bitmap.WithAlpha(51))
	if got := c.At(0, 0); got != 0x333333 {
		t.Errorf("pixel = %06x, want 333333", got)
	}
}
