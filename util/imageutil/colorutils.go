package imageutil

import (
	"image/color"
)

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(r >> 8),
		uint8(g >> 8),
		uint8(b >> 8),
		uint8(a >> 8),
	}
}

func BgraColor(c color.Color) color.RGBA {
	c2 := RgbaColor(c)
	c2.R, c2.B = c2.B, c2.R // convert to BGR
	return c2
}

// Ex. usage: cursor fonts take 16 bit channels.
func ColorUint16s(c color.Color) (uint16, uint16, uint16, uint16) {
	r, g, b, a := c.RGBA()
	return uint16(r << 8), uint16(g << 8), uint16(b << 8), uint16(a)
}

//----------

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	if v < 0 || v > 1 {
		panic("!")
	}
	c2 := RgbaColor(c)
	c2.R += uint8(v * float64(255-c2.R))
	c2.G += uint8(v * float64(255-c2.G))
	c2.B += uint8(v * float64(255-c2.B))
	return c2
}

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	if v < 0 || v > 1 {
		panic("!")
	}
	v = 1.0 - v
	c2 := RgbaColor(c)
	c2.R = uint8(v * float64(c2.R))
	c2.G = uint8(v * float64(c2.G))
	c2.B = uint8(v * float64(c2.B))
	return c2
}
