// Package font implements bitmap fonts for bitmap canvases.
//
// A Font is an ordered set of glyph rasters, one per printable character
// starting at the space (U+0020). Glyphs are either 1-bit masks, painted
// with Canvas.DrawMask, or 8-bit gradients, painted with
// Canvas.DrawGradient. All glyphs share one height.
//
// # File format
//
// Fonts are stored in a compact binary format, all integers big-endian:
//
//	byte   encoding        0 = mask, 1 = gradient
//	int32  glyph count
//	byte   glyph height
//	byte   letter spacing
//	byte   line spacing
//	glyph count times:
//	  byte   glyph width
//	  mask:     ceil(width*height/8) bytes, one bit per pixel, MSB first
//	  gradient: width*height bytes, one byte per pixel
//
// Decode reads the format and Encode writes it. FromFace, FromOpenType and
// FromStrip build fonts from golang.org/x/image faces, OpenType data and
// glyph-strip images.
//
// # Example usage
//
//	f, err := font.Open("small.font")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := bitmap.New(bitmap.RGBModel, 320, 200)
//	c.SetFont(f)
//	c.Write("Hello,\nworld", bitmap.White, 4, 4)
//
// A Font is read-only once built, apart from its spacing setters, and may
// be shared by many canvases.
package font
