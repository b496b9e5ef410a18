package bitmap

import (
	"errors"
	"image/color"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("bitmap: invalid hex color")

// Color is a 24-bit opaque color packed as 0xRRGGBB.
// Bits above the low 24 are not part of the color; producers keep them zero.
type Color uint32

// RGB creates a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements the color.Color interface. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	g = uint32(c.G())
	b = uint32(c.B())
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// FromColor converts a standard color.Color to a Color.
// The alpha channel is discarded; channels are taken un-premultiplied.
func FromColor(c color.Color) Color {
	if v, ok := c.(Color); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(n.R, n.G, n.B)
}

// ParseHex parses a color string.
// Supports formats: "RGB", "RRGGBB", each with an optional leading '#'.
func ParseHex(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return 0, ErrInvalidHex
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return 0, ErrInvalidHex
		}
	default:
		return 0, ErrInvalidHex
	}

	return Color(r<<16 | g<<8 | b), nil
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
const (
	Black   Color = 0x000000
	White   Color = 0xffffff
	Red     Color = 0xff0000
	Green   Color = 0x00ff00
	Blue    Color = 0x0000ff
	Yellow  Color = 0xffff00
	Cyan    Color = 0x00ffff
	Magenta Color = 0xff00ff
)
