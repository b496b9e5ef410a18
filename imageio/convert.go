package imageio

import (
	"image"
	"image/color"

	"github.com/gogpu/bitmap"
)

// FromImage copies img into a new RGB canvas. Alpha is discarded: each
// pixel keeps its un-premultiplied color.
func FromImage(img image.Image) *bitmap.Canvas[bitmap.Color] {
	b := img.Bounds()
	c := bitmap.New(bitmap.RGBModel, b.Dx(), b.Dy())

	// Fast path for the decoders' most common output.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < b.Dx(); x++ {
				p := row[x*4:]
				c.SetPixel(x, y, bitmap.RGB(p[0], p[1], p[2]))
			}
		}
		return c
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c.SetPixel(x, y, bitmap.FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return c
}

// MaskFromImage returns a bit canvas that is set where img is pure
// black (alpha ignored) and clear everywhere else.
func MaskFromImage(img image.Image) *bitmap.Canvas[bool] {
	b := img.Bounds()
	c := bitmap.New(bitmap.BitModel, b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c.SetPixel(x, y, bitmap.FromColor(img.At(b.Min.X+x, b.Min.Y+y)) == bitmap.Black)
		}
	}
	return c
}

// GrayFromImage returns a byte canvas holding the luminance of img.
func GrayFromImage(img image.Image) *bitmap.Canvas[uint8] {
	b := img.Bounds()
	c := bitmap.New(bitmap.ByteModel, b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			c.SetPixel(x, y, g.Y)
		}
	}
	return c
}

// ToImage returns an opaque image of c.
func ToImage(c *bitmap.Canvas[bitmap.Color]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	for i, v := range c.Raster().Pix() {
		p := img.Pix[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = v.R(), v.G(), v.B(), 0xff
	}
	return img
}

// MaskToImage returns an image of m with set pixels painted on and
// clear pixels painted off.
func MaskToImage(m *bitmap.Canvas[bool], on, off bitmap.Color) *image.Paletted {
	palette := color.Palette{off, on}
	img := image.NewPaletted(image.Rect(0, 0, m.Width(), m.Height()), palette)
	for i, set := range m.Raster().Pix() {
		if set {
			img.Pix[i] = 1
		}
	}
	return img
}

// GrayToImage returns a grayscale image of g.
func GrayToImage(g *bitmap.Canvas[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	copy(img.Pix, g.Raster().Pix())
	return img
}
