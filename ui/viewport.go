package ui

import (
	"image"
	"math"

	"github.com/jmigpin/pointcloud/pcloud"
	"github.com/jmigpin/pointcloud/util/mathutil"
)

const (
	minViewportWidth = 1e-3
	maxViewportWidth = 1e6
)

// Viewport maps between world units and view image pixels. World Y grows
// upward, image Y downward. The view shows Width world units horizontally
// centered on Center; the vertical span follows from the view rectangle's
// aspect ratio.
type Viewport struct {
	Center pcloud.Point
	Width  float64
}

func NewViewport() *Viewport {
	return &Viewport{Width: 10}
}

func (vp *Viewport) worldPerPx(r image.Rectangle) float64 {
	if r.Dx() <= 0 {
		return 1
	}
	return vp.Width / float64(r.Dx())
}

// ToImage maps world point p into r. The bool reports whether the result
// is visible inside r.
func (vp *Viewport) ToImage(p pcloud.Point, r image.Rectangle) (image.Point, bool) {
	wpp := vp.worldPerPx(r)
	halfW := vp.Width / 2
	halfH := wpp * float64(r.Dy()) / 2
	ix := float64(r.Min.X) + (p.X-(vp.Center.X-halfW))/wpp
	iy := float64(r.Min.Y) + ((vp.Center.Y+halfH)-p.Y)/wpp
	// floor picks the pixel whose cell contains the continuous coordinate
	ip := image.Point{int(math.Floor(ix)), int(math.Floor(iy))}
	return ip, ip.In(r)
}

// FromImage maps an image point in r back to world units.
func (vp *Viewport) FromImage(ip image.Point, r image.Rectangle) pcloud.Point {
	wpp := vp.worldPerPx(r)
	halfW := vp.Width / 2
	halfH := wpp * float64(r.Dy()) / 2
	x := (vp.Center.X - halfW) + (float64(ip.X-r.Min.X)+0.5)*wpp
	y := (vp.Center.Y + halfH) - (float64(ip.Y-r.Min.Y)+0.5)*wpp
	return pcloud.P(x, y)
}

// WorldPerPx is the world length of one pixel in r.
func (vp *Viewport) WorldPerPx(r image.Rectangle) float64 {
	return vp.worldPerPx(r)
}

func (vp *Viewport) Translate(dx, dy float64) {
	vp.Center.X += dx
	vp.Center.Y += dy
}

// Scale zooms by factor (<1 zooms in), keeping the center fixed.
func (vp *Viewport) Scale(factor float64) {
	vp.Width = mathutil.Limit(vp.Width*factor, minViewportWidth, maxViewportWidth)
}
