package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestFillCircle(t *testing.T) {
	r := image.Rect(0, 0, 40, 40)
	img := NewBGRA(&r)
	c := image.Point{20, 20}
	red := color.RGBA{255, 0, 0, 255}
	FillCircle(img, c, 5, red)

	at := func(x, y int) color.RGBA {
		return RgbaColor(img.At(x, y))
	}
	if at(20, 20) != red {
		t.Fatal(at(20, 20))
	}
	if at(25, 20) != red { // on the edge
		t.Fatal(at(25, 20))
	}
	if at(26, 20) == red { // outside
		t.Fatal(at(26, 20))
	}
	if at(24, 24) == red { // corner of the square, outside the disc
		t.Fatal(at(24, 24))
	}
}

func TestBorderCircle(t *testing.T) {
	r := image.Rect(0, 0, 40, 40)
	img := NewBGRA(&r)
	c := image.Point{20, 20}
	red := color.RGBA{255, 0, 0, 255}
	BorderCircle(img, c, 6, 2, red)

	at := func(x, y int) color.RGBA {
		return RgbaColor(img.At(x, y))
	}
	if at(20, 20) == red { // center stays empty
		t.Fatal(at(20, 20))
	}
	if at(26, 20) != red { // on the ring
		t.Fatal(at(26, 20))
	}
	if at(25, 20) != red { // inner ring edge
		t.Fatal(at(25, 20))
	}
	if at(23, 20) == red { // inside the hole
		t.Fatal(at(23, 20))
	}
}

func TestCircleClipped(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	img := NewBGRA(&r)
	// centered outside the image, must not panic and still paint the overlap
	FillCircle(img, image.Point{0, 0}, 4, color.RGBA{0, 255, 0, 255})
	if RgbaColor(img.At(0, 0)) != (color.RGBA{0, 255, 0, 255}) {
		t.Fatal(img.At(0, 0))
	}
}

func BenchmarkFillCircle(b *testing.B) {
	r := image.Rect(0, 0, 400, 400)
	img := NewBGRA(&r)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillCircle(img, image.Point{200, 200}, 8, color.White)
	}
}
