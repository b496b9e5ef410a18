package font

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode"

	"github.com/gogpu/bitmap"
)

// headerSize is the encoded size of the font header.
const headerSize = 1 + 4 + 1 + 1 + 1

// maxGlyphs is the largest glyph count that stays inside Unicode.
const maxGlyphs = unicode.MaxRune - FirstRune + 1

// decodeState tracks the progress of a decoder.
type decodeState uint8

const (
	stateUnopened decodeState = iota
	stateHeaderRead
	stateGlyphsLoaded
	stateReady
)

// decoder reads one font from a stream, strictly sequentially.
type decoder struct {
	r      io.Reader
	state  decodeState
	offset int64
	count  int
	font   *Font
}

// Decode reads a font in the binary format from r.
//
// Decode reads exactly the bytes of one font and never reads ahead, so r
// may continue with other data. Any short read, unknown encoding or
// invalid count fails the whole load with a *FormatError.
func Decode(r io.Reader) (*Font, error) {
	d := &decoder{r: r}
	if err := d.readHeader(); err != nil {
		return nil, err
	}
	if err := d.readGlyphs(); err != nil {
		return nil, err
	}
	f := d.finish()

	bitmap.Logger().Debug("font decoded",
		"encoding", f.encoding,
		"glyphs", f.Len(),
		"height", f.height,
		"monospaced", f.monospaced)
	return f, nil
}

// Parse decodes a font held in memory.
func Parse(data []byte) (*Font, error) {
	return Decode(bytes.NewReader(data))
}

// Open decodes the font file at path.
func Open(path string) (*Font, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("font: open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(bufio.NewReader(file))
}

// read fills buf from the stream. glyph is the glyph index for error
// reports, -1 in the header.
func (d *decoder) read(buf []byte, glyph int) error {
	n, err := io.ReadFull(d.r, buf)
	d.offset += int64(n)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrTruncated
	}
	return &FormatError{Offset: d.offset, Glyph: glyph, Err: err}
}

func (d *decoder) readHeader() error {
	var hdr [headerSize]byte
	if err := d.read(hdr[:], -1); err != nil {
		return err
	}

	encoding := Encoding(hdr[0])
	if !encoding.IsValid() {
		return &FormatError{Offset: 0, Glyph: -1, Err: ErrUnknownEncoding}
	}

	count := int64(int32(binary.BigEndian.Uint32(hdr[1:5])))
	if count < 0 || count > maxGlyphs {
		return &FormatError{
			Offset: 1,
			Glyph:  -1,
			Err:    fmt.Errorf("%w: %d", ErrInvalidGlyphCount, count),
		}
	}

	d.count = int(count)
	d.font = &Font{
		encoding:      encoding,
		height:        int(hdr[5]),
		letterSpacing: int(hdr[6]),
		lineSpacing:   int(hdr[7]),
	}
	d.state = stateHeaderRead
	return nil
}

func (d *decoder) readGlyphs() error {
	if d.state != stateHeaderRead {
		panic("font: glyphs read before header")
	}
	f := d.font
	h := f.height

	var width [1]byte
	var data []byte
	for i := 0; i < d.count; i++ {
		if err := d.read(width[:], i); err != nil {
			return err
		}
		w := int(width[0])
		n := w * h

		switch f.encoding {
		case EncodingMask:
			data = grow(data, (n+7)/8)
			if err := d.read(data, i); err != nil {
				return err
			}
			f.masks = append(f.masks, unpackBits(data, w, h))
		case EncodingGradient:
			data = grow(data, n)
			if err := d.read(data, i); err != nil {
				return err
			}
			g := bitmap.New(bitmap.ByteModel, w, h)
			copy(g.Raster().Pix(), data)
			f.gradients = append(f.gradients, g)
		}
	}
	d.state = stateGlyphsLoaded
	return nil
}

func (d *decoder) finish() *Font {
	if d.state != stateGlyphsLoaded {
		panic("font: finish before glyphs are loaded")
	}
	d.font.monospaced = d.font.checkMonospaced()
	d.state = stateReady
	return d.font
}

// grow returns buf resized to n bytes, reusing its storage when possible.
func grow(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

// unpackBits expands MSB-first packed bits into a w x h mask. Padding
// bits past w*h are ignored.
func unpackBits(data []byte, w, h int) *bitmap.Canvas[bool] {
	m := bitmap.New(bitmap.BitModel, w, h)
	r := m.Raster()
	for p := 0; p < w*h; p++ {
		if data[p>>3]&(0x80>>(p&7)) != 0 {
			r.Set(p, true)
		}
	}
	return m
}
