package shape

import (
	"math"

	"github.com/gogpu/bitmap"
)

// Line draws the segment from (x0, y0) to (x1, y1).
//
// The segment is sampled at unit steps along its direction, starting at
// (x0, y0), with each sample rounded to the nearest pixel. A segment of
// length zero sets the single pixel (x0, y0).
func Line[T bitmap.Pixel](c *bitmap.Canvas[T], v T, x0, y0, x1, y1 int) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	length := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)
	cos, sin := math.Cos(angle), math.Sin(angle)

	for i := 0; float64(i) <= length; i++ {
		x := int(float64(x0) + float64(i)*cos + 0.5)
		y := int(float64(y0) + float64(i)*sin + 0.5)
		set(c, x, y, v)
	}
}

// set writes v at (x, y) when the pixel lies inside c.
func set[T bitmap.Pixel](c *bitmap.Canvas[T], x, y int, v T) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	c.SetPixel(x, y, v)
}
