package shape

import (
	"math"

	"github.com/gogpu/bitmap"
)

// Rect draws the outline of the rectangle with inclusive corners
// (x0, y0) and (x1, y1). The corners may be given in any order.
func Rect[T bitmap.Pixel](c *bitmap.Canvas[T], v T, x0, y0, x1, y1 int) {
	Line(c, v, x0, y0, x1, y0)
	Line(c, v, x1, y0, x1, y1)
	Line(c, v, x1, y1, x0, y1)
	Line(c, v, x0, y1, x0, y0)
}

// Polyline draws connected segments through the given points, given as
// x, y pairs. A trailing odd coordinate is ignored.
func Polyline[T bitmap.Pixel](c *bitmap.Canvas[T], v T, points ...int) {
	for i := 0; i+3 < len(points); i += 2 {
		Line(c, v, points[i], points[i+1], points[i+2], points[i+3])
	}
}

// RegularPolygon draws a closed polygon with n vertices on the circle of
// radius r around (cx, cy), the first vertex at angle rotation (radians).
func RegularPolygon[T bitmap.Pixel](c *bitmap.Canvas[T], v T, n, cx, cy, r int, rotation float64) {
	if n < 3 {
		return
	}
	points := make([]int, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		a := rotation + 2*math.Pi*float64(i%n)/float64(n)
		points = append(points,
			cx+int(math.Round(float64(r)*math.Cos(a))),
			cy+int(math.Round(float64(r)*math.Sin(a))))
	}
	Polyline(c, v, points...)
}
