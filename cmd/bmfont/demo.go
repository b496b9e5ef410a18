package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/font"
	"github.com/gogpu/bitmap/imageio"
	"github.com/gogpu/bitmap/shape"
)

func newDemoCmd() *cobra.Command {
	var (
		out           string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "draw a sample image exercising shapes, compositing, transforms and text",
		Args:  cobra.NoArgs,
		RunE: withStack(func(_ *cobra.Command, _ []string) error {
			if width < 64 || height < 64 {
				return bitmap.ErrInvalidDimensions
			}
			c := drawDemo(width, height)
			if err := imageio.Save(out, imageio.ToImage(c)); err != nil {
				return err
			}
			bitmap.Logger().Info("demo written", "path", out, "width", width, "height", height)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&out, "out", "o", "demo.png", "output image")
	cmd.Flags().IntVar(&width, "width", 320, "image width")
	cmd.Flags().IntVar(&height, "height", 200, "image height")
	return cmd
}

func drawDemo(w, h int) *bitmap.Canvas[bitmap.Color] {
	c := bitmap.New(bitmap.RGBModel, w, h)

	// Background bands, darkest at the top.
	const bands = 16
	for i := 0; i < bands; i++ {
		t := float64(i) / bands
		col := bitmap.RGB(uint8(25+t*100), uint8(50+t*75), uint8(100+t*50))
		y0 := h * i / bands
		y1 := h*(i+1)/bands - 1
		c.Fill(0, y0, w-1, y1, col)
	}

	// Overlapping translucent squares.
	c.Fill(16, 16, 63, 63, bitmap.RGB(255, 80, 80), bitmap.WithAlpha(200))
	c.Fill(40, 28, 87, 75, bitmap.RGB(80, 255, 80), bitmap.WithAlpha(200))
	c.Fill(28, 40, 75, 87, bitmap.RGB(80, 80, 255), bitmap.WithAlpha(200))

	// Outlines.
	shape.Circle(c, bitmap.White, w/2-24, 16, 24)
	shape.Disc(c, bitmap.RGB(255, 220, 0), w/2-8, 32, 8)
	shape.Rect(c, bitmap.White, w/2+32, 16, w/2+80, 64)
	shape.RegularPolygon(c, bitmap.RGB(255, 160, 0), 6, w-40, 40, 24, math.Pi/6)
	for i := 0; i < 8; i++ {
		shape.Line(c, bitmap.White, 8, h-8, 8+i*12, h-72)
	}

	// Text and a transformed copy of it.
	f := font.Basic()
	c.SetFont(f)
	const msg = "bitmap"
	c.Write(msg, bitmap.White, w/2-f.WidthOf(msg)/2, h/2)

	label := bitmap.New(bitmap.BitModel, f.WidthOf(msg), f.Height())
	f.Layout(msg, 0, 0, func(g bitmap.Glyph, gx, gy int) {
		label.DrawMask(g.Mask, true, gx, gy)
	})
	label = label.Scaled(2, 2).RotatedByAngle(-math.Pi/8, false)
	c.DrawMask(label, bitmap.RGB(255, 255, 180), w-label.Width()-8, h-label.Height()-8, bitmap.WithAlpha(160))

	return c
}
