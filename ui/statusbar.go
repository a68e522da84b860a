package ui

import (
	"image"
	"image/draw"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/jmigpin/pointcloud/util/imageutil"
)

const statusBarPad = 3

// StatusBar renders one line of text at the bottom of the window.
type StatusBar struct {
	Bounds image.Rectangle
	Text   string

	face font.Face
}

func NewStatusBar(face font.Face) *StatusBar {
	return &StatusBar{face: face}
}

// Height is the bar height for the face in use.
func (sb *StatusBar) Height() int {
	m := sb.face.Metrics()
	return (m.Ascent + m.Descent).Ceil() + 2*statusBarPad
}

func (sb *StatusBar) Paint(img draw.Image) {
	imageutil.FillRectangle(img, sb.Bounds, colornames.Lightgray)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colornames.Black),
		Face: sb.face,
		Dot: fixed.Point26_6{
			X: fixed.I(sb.Bounds.Min.X + statusBarPad),
			Y: fixed.I(sb.Bounds.Min.Y+statusBarPad) + sb.face.Metrics().Ascent,
		},
	}
	d.DrawString(sb.Text)
}
