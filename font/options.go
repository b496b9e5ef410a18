package font

import (
	"fmt"

	"github.com/gogpu/bitmap"
)

// Option configures font import (FromFace, FromOpenType, FromStrip).
//
// Example:
//
//	f, err := font.FromOpenType(ttf, 16,
//	    font.WithEncoding(font.EncodingGradient),
//	    font.WithLetterSpacing(0))
type Option func(*options)

// options holds optional configuration for font import.
type options struct {
	encoding      Encoding
	count         int
	letterSpacing int
	lineSpacing   int
	separator     bitmap.Color
	threshold     uint8
}

// defaultOptions returns the default import options.
func defaultOptions() options {
	return options{
		encoding:      EncodingMask,
		count:         0, // every glyph the source provides, or ASCII for faces
		letterSpacing: 1,
		lineSpacing:   1,
		separator:     bitmap.Red,
		threshold:     128,
	}
}

// asciiGlyphs is the number of printable ASCII characters, U+0020 to U+007E.
const asciiGlyphs = 95

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// checkCount rejects glyph counts no font can hold.
func (o *options) checkCount() error {
	if o.count < 0 || o.count > maxGlyphs {
		return fmt.Errorf("%w: %d", ErrInvalidGlyphCount, o.count)
	}
	return nil
}

// WithEncoding selects mask (default) or gradient glyphs.
func WithEncoding(e Encoding) Option {
	return func(o *options) {
		o.encoding = e
	}
}

// WithGlyphCount sets the number of glyphs to import, starting at
// FirstRune. Faces default to the 95 printable ASCII characters; strips
// default to every glyph in the strip. A negative n makes the import fail
// with ErrInvalidGlyphCount.
func WithGlyphCount(n int) Option {
	return func(o *options) {
		o.count = n
	}
}

// WithLetterSpacing sets the letter spacing of the imported font (default 1).
func WithLetterSpacing(spacing int) Option {
	return func(o *options) {
		o.letterSpacing = spacing
	}
}

// WithLineSpacing sets the line spacing of the imported font (default 1).
func WithLineSpacing(spacing int) Option {
	return func(o *options) {
		o.lineSpacing = spacing
	}
}

// WithSeparator sets the color that marks glyph boundaries in row 0 of a
// glyph strip (default bitmap.Red).
func WithSeparator(c bitmap.Color) Option {
	return func(o *options) {
		o.separator = c
	}
}

// WithThreshold sets the coverage at or above which a face pixel becomes
// set in a mask glyph (default 128).
func WithThreshold(t uint8) Option {
	return func(o *options) {
		o.threshold = t
	}
}
