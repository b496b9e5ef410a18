package bitmap

import (
	"fmt"
	"math"

	"github.com/gogpu/bitmap/internal/parallel"
)

// Copy returns a canvas with the same dimensions and pixels.
func (c *Canvas[T]) Copy() *Canvas[T] {
	result := New(c.model, c.width, c.height)
	copy(result.raster.Pix(), c.raster.Pix())
	return result
}

// Scaled returns the canvas enlarged by integer factors. Every source
// pixel becomes an xScale x yScale block.
// It panics with ErrInvalidScale if a factor is below 1.
func (c *Canvas[T]) Scaled(xScale, yScale int) *Canvas[T] {
	if xScale < 1 || yScale < 1 {
		panic(ErrInvalidScale)
	}
	result := New(c.model, c.width*xScale, c.height*yScale)

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			v := c.At(x, y)

			xPix := x * xScale
			yPix := y * yScale
			for yi := 0; yi < yScale; yi++ {
				for xi := 0; xi < xScale; xi++ {
					result.SetPixel(xPix+xi, yPix+yi, v)
				}
			}
		}
	}
	return result
}

// ScaledByDimension resamples the canvas to width x height using
// nearest-neighbour sampling: destination (x, y) takes source
// (floor(x/xs), floor(y/ys)) with xs = width/c.Width().
//
// It panics with ErrInvalidDimensions if width or height is negative, or
// if an empty canvas is asked for a non-empty result.
func (c *Canvas[T]) ScaledByDimension(width, height int) *Canvas[T] {
	result := New(c.model, width, height)
	if width == 0 || height == 0 {
		return result
	}
	if c.width == 0 || c.height == 0 {
		panic(fmt.Errorf("%w: cannot resample %dx%d to %dx%d",
			ErrInvalidDimensions, c.width, c.height, width, height))
	}

	xScale := float64(width) / float64(c.width)
	yScale := float64(height) / float64(c.height)

	parallel.Rows(width, height, Workers(), func(yStart, yEnd int) {
		for y1 := yStart; y1 < yEnd; y1++ {
			y0 := int(float64(y1) / yScale)
			for x1 := 0; x1 < width; x1++ {
				x0 := int(float64(x1) / xScale)
				result.SetPixel(x1, y1, c.At(x0, y0))
			}
		}
	})
	return result
}

// ScaledBy resamples the canvas by fractional factors; the result size
// is truncated to whole pixels.
func (c *Canvas[T]) ScaledBy(xScale, yScale float64) *Canvas[T] {
	return c.ScaledByDimension(int(float64(c.width)*xScale), int(float64(c.height)*yScale))
}

// Subimage returns a copy of the width x height rectangle at (x, y).
// It panics with ErrOutOfBounds if the rectangle is not inside the canvas.
func (c *Canvas[T]) Subimage(x, y, width, height int) *Canvas[T] {
	if x < 0 || y < 0 || width < 0 || height < 0 || x+width > c.width || y+height > c.height {
		panic(fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d",
			ErrOutOfBounds, width, height, x, y, c.width, c.height))
	}
	result := New(c.model, width, height)

	for yi := 0; yi < height; yi++ {
		for xi := 0; xi < width; xi++ {
			result.SetPixel(xi, yi, c.At(x+xi, y+yi))
		}
	}
	return result
}

// Flipped returns the canvas mirrored horizontally, vertically or both.
func (c *Canvas[T]) Flipped(horizontal, vertical bool) *Canvas[T] {
	result := New(c.model, c.width, c.height)

	for y := 0; y < c.height; y++ {
		yPix := y
		if vertical {
			yPix = c.height - y - 1
		}
		for x := 0; x < c.width; x++ {
			xPix := x
			if horizontal {
				xPix = c.width - x - 1
			}
			result.SetPixel(xPix, yPix, c.At(x, y))
		}
	}
	return result
}

// Rotated returns the canvas turned clockwise by quarterTurns * 90°.
// Any integer is accepted; it is reduced modulo 4. Odd turns swap width
// and height. No pixel is lost or duplicated.
func (c *Canvas[T]) Rotated(quarterTurns int) *Canvas[T] {
	rot := ((quarterTurns % 4) + 4) % 4

	var result *Canvas[T]
	if rot%2 == 0 {
		result = New(c.model, c.width, c.height)
	} else {
		result = New(c.model, c.height, c.width)
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			var x1, y1 int
			switch rot {
			case 0:
				x1, y1 = x, y
			case 1:
				x1, y1 = c.height-y-1, x
			case 2:
				x1, y1 = c.width-x-1, c.height-y-1
			default:
				x1, y1 = y, c.width-x-1
			}
			result.SetPixel(x1, y1, c.At(x, y))
		}
	}
	return result
}

// RotatedByAngle returns the canvas rotated by theta radians around its
// center, sampling the nearest source pixel for every destination pixel.
// The result is sized to the bounding box of the rotated rectangle and
// pixels with no source are set to background.
func (c *Canvas[T]) RotatedByAngle(theta float64, background T) *Canvas[T] {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}

	cos0 := math.Cos(-theta)
	sin0 := math.Sin(-theta)

	fw, fh := float64(c.width), float64(c.height)
	w := int(math.Abs(cos0*fw) + math.Abs(sin0*fh) + 0.5)
	h := int(math.Abs(cos0*fh) + math.Abs(sin0*fw) + 0.5)
	result := NewFilled(c.model, w, h, background)

	c0x, c0y := fw/2, fh/2
	c1x, c1y := float64(w)/2, float64(h)/2

	// The rounding below is off by one pixel on one axis in the second
	// and third quadrants; these offsets put the image back in place.
	var xFix, yFix int
	if theta >= math.Pi/2 && theta <= math.Pi {
		yFix = -1
	}
	if theta >= math.Pi && theta <= math.Pi/2*3 {
		xFix = -1
	}

	parallel.Rows(w, h, Workers(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			yd := float64(y) - c1y
			for x := 0; x < w; x++ {
				xd := float64(x) - c1x

				// int() truncates toward zero, as the offset fix expects.
				x0 := int(xd*cos0-yd*sin0+0.5+c0x) + xFix
				y0 := int(xd*sin0+yd*cos0+0.5+c0y) + yFix

				if x0 < 0 || x0 >= c.width || y0 < 0 || y0 >= c.height {
					continue
				}
				result.SetPixel(x, y, c.At(x0, y0))
			}
		}
	})
	return result
}
