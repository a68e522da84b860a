package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// FillCircle paints the disc centered at c.
func FillCircle(img draw.Image, c image.Point, radius int, col color.Color) {
	circle(img, c, radius, 0, col)
}

// BorderCircle paints a ring of the given thickness along the disc edge.
func BorderCircle(img draw.Image, c image.Point, radius, size int, col color.Color) {
	in := radius - size
	if in < 0 {
		in = 0
	}
	circle(img, c, radius, in, col)
}

func circle(img draw.Image, c image.Point, radius, inRadius int, col color.Color) {
	b := image.Rect(c.X-radius, c.Y-radius, c.X+radius+1, c.Y+radius+1)
	b = b.Intersect(img.Bounds())
	if b.Empty() {
		return
	}
	out2 := radius * radius
	in2 := inRadius * inRadius
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := x-c.X, y-c.Y
			d := dx*dx + dy*dy
			if d <= out2 && d >= in2 {
				img.Set(x, y, col)
			}
		}
	}
}
