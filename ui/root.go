package ui

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"

	"github.com/jmigpin/pointcloud/pcloud"
)

// Root lays out the cloud view above the status bar.
type Root struct {
	CloudView *CloudView
	StatusBar *StatusBar
}

func NewRoot(cloud *pcloud.Cloud, face font.Face) *Root {
	return &Root{
		CloudView: NewCloudView(cloud),
		StatusBar: NewStatusBar(face),
	}
}

func (root *Root) Resize(r image.Rectangle) {
	split := r.Max.Y - root.StatusBar.Height()
	if split < r.Min.Y {
		split = r.Min.Y
	}
	root.CloudView.Bounds = image.Rect(r.Min.X, r.Min.Y, r.Max.X, split)
	root.StatusBar.Bounds = image.Rect(r.Min.X, split, r.Max.X, r.Max.Y)
}

func (root *Root) Paint(img draw.Image) {
	root.CloudView.Paint(img)
	root.StatusBar.Paint(img)
}
