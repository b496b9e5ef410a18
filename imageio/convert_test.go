package imageio

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/bitmap"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{0, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(2, 0, color.NRGBA{0, 0, 0, 10})
	img.Set(0, 1, color.NRGBA{10, 20, 30, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 255})
	img.Set(2, 1, color.NRGBA{1, 0, 0, 255})
	return img
}

func TestFromImage(t *testing.T) {
	want := []bitmap.Color{
		bitmap.Black, bitmap.Red, bitmap.Black,
		0x0a141e, bitmap.White, 0x010000,
	}

	c := FromImage(testImage())
	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", c.Width(), c.Height())
	}
	if diff := cmp.Diff(want, c.Raster().Pix()); diff != "" {
		t.Errorf("NRGBA mismatch (-want +got):\n%s", diff)
	}

	// Generic path: an RGBA image with opaque pixels gives the same colors.
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 0 {
				continue
			}
			rgba.Set(x, y, testImage().At(x, y))
		}
	}
	if diff := cmp.Diff(want, FromImage(rgba).Raster().Pix()); diff != "" {
		t.Errorf("RGBA mismatch (-want +got):\n%s", diff)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := testImage().SubImage(image.Rect(1, 1, 3, 2))
	got := FromImage(src).Raster().Pix()
	if diff := cmp.Diff([]bitmap.Color{bitmap.White, 0x010000}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskFromImage(t *testing.T) {
	got := MaskFromImage(testImage()).Raster().Pix()
	want := []bool{true, false, true, false, false, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGrayFromImage(t *testing.T) {
	got := GrayFromImage(testImage()).Raster().Pix()
	if got[0] != 0 || got[4] != 255 {
		t.Errorf("black/white luminance = %d/%d, want 0/255", got[0], got[4])
	}
}

func TestToImage(t *testing.T) {
	c := FromImage(testImage())
	img := ToImage(c)
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(0, 1); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("pixel (0,1) = %v", got)
	}
	if diff := cmp.Diff(c.Raster().Pix(), FromImage(img).Raster().Pix()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskToImage(t *testing.T) {
	m := bitmap.New(bitmap.BitModel, 2, 1)
	m.SetPixel(1, 0, true)

	img := MaskToImage(m, bitmap.White, bitmap.Blue)
	if got := bitmap.FromColor(img.At(0, 0)); got != bitmap.Blue {
		t.Errorf("clear pixel = %06x, want blue", got)
	}
	if got := bitmap.FromColor(img.At(1, 0)); got != bitmap.White {
		t.Errorf("set pixel = %06x, want white", got)
	}
}

func TestGrayToImage(t *testing.T) {
	g := bitmap.New(bitmap.ByteModel, 2, 2)
	g.SetPixel(1, 1, 200)

	img := GrayToImage(g)
	if img.GrayAt(1, 1).Y != 200 || img.GrayAt(0, 0).Y != 0 {
		t.Errorf("pixels = %v, %v", img.GrayAt(1, 1), img.GrayAt(0, 0))
	}
	if diff := cmp.Diff(g.Raster().Pix(), GrayFromImage(img).Raster().Pix()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
