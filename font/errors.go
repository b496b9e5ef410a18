package font

import (
	"errors"
	"fmt"
)

// Sentinel errors for font package.
var (
	// ErrUnknownEncoding is returned when the encoding tag is neither mask nor gradient.
	ErrUnknownEncoding = errors.New("font: unknown glyph encoding")

	// ErrInvalidGlyphCount is returned when the glyph count is negative or
	// exceeds the Unicode range.
	ErrInvalidGlyphCount = errors.New("font: invalid glyph count")

	// ErrTruncated is returned when the stream ends before the font does.
	ErrTruncated = errors.New("font: truncated data")

	// ErrInvalidGlyph is returned when a glyph does not match the font's
	// encoding or height.
	ErrInvalidGlyph = errors.New("font: invalid glyph")

	// ErrFieldRange is returned when a value does not fit its one-byte field.
	ErrFieldRange = errors.New("font: value does not fit in one byte")

	// ErrStripTooShort is returned when a glyph strip holds fewer glyphs
	// than requested.
	ErrStripTooShort = errors.New("font: strip holds fewer glyphs than requested")

	// ErrRuneRange is the panic value for runes the font has no glyph for.
	ErrRuneRange = errors.New("font: rune outside the font's range")
)

// FormatError is returned when a font stream cannot be decoded.
// The font is unusable; nothing is returned alongside the error.
type FormatError struct {
	// Offset is the byte offset at which decoding failed.
	Offset int64

	// Glyph is the index of the glyph being decoded, or -1 in the header.
	Glyph int

	Err error
}

func (e *FormatError) Error() string {
	if e.Glyph < 0 {
		return fmt.Sprintf("font: header at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("font: glyph %d at offset %d: %v", e.Glyph, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
