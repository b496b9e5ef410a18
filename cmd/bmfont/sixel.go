package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	sixel "github.com/mattn/go-sixel"
	"golang.org/x/term"

	"github.com/gogpu/bitmap"
)

// writeSixel writes img to w as a sixel image followed by a newline.
func writeSixel(w io.Writer, img image.Image) error {
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		bitmap.Logger().Warn("sixel output is not a terminal", "name", f.Name())
	}

	bw := bufio.NewWriter(w)
	enc := sixel.NewEncoder(bw)
	if err := enc.Encode(img); err != nil {
		return fmt.Errorf("encode sixel: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
