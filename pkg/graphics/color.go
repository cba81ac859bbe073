package graphics

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha byte of the color.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// LerpColor linearly interpolates between two colors per channel.
func LerpColor(a, b Color, t float64) Color {
	lerpByte := func(x, y uint8) uint8 {
		return uint8(Lerp(float64(x), float64(y), t))
	}
	return RGBA8(
		lerpByte(uint8(a>>16), uint8(b>>16)),
		lerpByte(uint8(a>>8), uint8(b>>8)),
		lerpByte(uint8(a), uint8(b)),
		lerpByte(uint8(a>>24), uint8(b>>24)),
	)
}
