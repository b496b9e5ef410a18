package blend

// Channel composites src over dst with the given opacity:
//
//	(src*alpha + dst*(255-alpha)) / 255
//
// alpha 255 returns src and alpha 0 returns dst.
func Channel(src, dst, alpha uint8) uint8 {
	return uint8(div255(uint32(src)*uint32(alpha) + uint32(dst)*uint32(inv255(alpha))))
}

// RGB composites two packed 0xRRGGBB colors channel by channel.
// Bits above the low 24 are dropped from the result.
func RGB(src, dst uint32, alpha uint8) uint32 {
	r := Channel(uint8(src>>16), uint8(dst>>16), alpha)
	g := Channel(uint8(src>>8), uint8(dst>>8), alpha)
	b := Channel(uint8(src), uint8(dst), alpha)
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Tint scales every channel of a packed 0xRRGGBB color by level/255.
// It is used to paint a gradient mask value in a given color.
func Tint(c uint32, level uint8) uint32 {
	r := mulDiv255(uint8(c>>16), level)
	g := mulDiv255(uint8(c>>8), level)
	b := mulDiv255(uint8(c), level)
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
