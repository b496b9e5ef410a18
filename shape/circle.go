package shape

import (
	"math"

	"github.com/gogpu/bitmap"
)

// Circle draws a one-pixel ring of radius r inside the (2r+1)-pixel square
// whose top-left corner is (x, y). A pixel belongs to the ring when its
// distance from the center, truncated to an integer, equals r.
func Circle[T bitmap.Pixel](c *bitmap.Canvas[T], v T, x, y, r int) {
	if r < 0 {
		return
	}
	d := 2 * r
	for yi := 0; yi <= d; yi++ {
		py := y + yi
		if py < 0 || py >= c.Height() {
			continue
		}
		dy := yi - r

		for xi := 0; xi <= d; xi++ {
			px := x + xi
			if px < 0 || px >= c.Width() {
				continue
			}
			dx := xi - r

			if int(math.Sqrt(float64(dx*dx+dy*dy))) == r {
				c.SetPixel(px, py, v)
			}
		}
	}
}

// Disc fills every pixel of the (2r+1)-pixel square at (x, y) whose
// truncated distance from the center is at most r.
func Disc[T bitmap.Pixel](c *bitmap.Canvas[T], v T, x, y, r int) {
	if r < 0 {
		return
	}
	d := 2 * r
	for yi := 0; yi <= d; yi++ {
		dy := yi - r
		for xi := 0; xi <= d; xi++ {
			dx := xi - r
			if int(math.Sqrt(float64(dx*dx+dy*dy))) <= r {
				set(c, x+xi, y+yi, v)
			}
		}
	}
}
