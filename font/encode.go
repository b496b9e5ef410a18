package font

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/bitmap"
)

// Encode writes f to w in the binary font format.
// Height, spacings and glyph widths must each fit in one unsigned byte.
func Encode(w io.Writer, f *Font) error {
	if err := checkByte("height", f.height); err != nil {
		return err
	}
	if err := checkByte("letter spacing", f.letterSpacing); err != nil {
		return err
	}
	if err := checkByte("line spacing", f.lineSpacing); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	var hdr [headerSize]byte
	hdr[0] = byte(f.encoding)
	binary.BigEndian.PutUint32(hdr[1:5], uint32(f.Len()))
	hdr[5] = byte(f.height)
	hdr[6] = byte(f.letterSpacing)
	hdr[7] = byte(f.lineSpacing)
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	for i := 0; i < f.Len(); i++ {
		g := f.glyphAt(i)
		width := g.Width()
		if err := checkByte(fmt.Sprintf("glyph %d width", i), width); err != nil {
			return err
		}
		if err := bw.WriteByte(byte(width)); err != nil {
			return err
		}

		var data []byte
		if g.Mask != nil {
			data = packBits(g.Mask)
		} else {
			data = g.Gradient.Raster().Pix()
		}
		if _, err := bw.Write(data); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Save writes f to the file at path, replacing it.
func Save(path string, f *Font) error {
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("font: create file: %w", err)
	}
	if err := Encode(file, f); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func checkByte(name string, v int) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("%w: %s is %d", ErrFieldRange, name, v)
	}
	return nil
}

// packBits packs a mask MSB-first into ceil(w*h/8) bytes. Padding bits
// are zero.
func packBits(m *bitmap.Canvas[bool]) []byte {
	pix := m.Raster().Pix()
	data := make([]byte, (len(pix)+7)/8)
	for p, set := range pix {
		if set {
			data[p>>3] |= 0x80 >> (p & 7)
		}
	}
	return data
}
