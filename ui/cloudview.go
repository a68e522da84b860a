package ui

import (
	"image"
	"image/draw"

	"golang.org/x/image/colornames"

	"github.com/jmigpin/pointcloud/pcloud"
	"github.com/jmigpin/pointcloud/util/imageutil"
)

const (
	pointRadius     = 5
	highlightRadius = 8
)

// CloudView draws the cloud through a viewport and tracks the highlighted
// point. It only reads the cloud.
type CloudView struct {
	Bounds    image.Rectangle
	Viewport  *Viewport
	Highlight int // stable index, -1 for none

	cloud *pcloud.Cloud
}

func NewCloudView(cloud *pcloud.Cloud) *CloudView {
	return &CloudView{
		cloud:     cloud,
		Viewport:  NewViewport(),
		Highlight: -1,
	}
}

// SetCloud swaps in a rebuilt cloud (ex: a file reload, the store has no
// delete so reloading starts over).
func (cv *CloudView) SetCloud(cloud *pcloud.Cloud) {
	cv.cloud = cloud
	cv.Highlight = -1
}

func (cv *CloudView) Paint(img draw.Image) {
	imageutil.FillRectangle(img, cv.Bounds, colornames.White)
	for si, p := range cv.cloud.Points() {
		ip, ok := cv.Viewport.ToImage(p, cv.Bounds)
		if !ok {
			continue
		}
		fill, border := colornames.Lightgreen, colornames.Darkgreen
		radius := pointRadius
		if si == cv.Highlight {
			fill, border = colornames.Lightcoral, colornames.Darkred
			radius = highlightRadius
		}
		imageutil.FillCircle(img, ip, radius, fill)
		imageutil.BorderCircle(img, ip, radius, 1, border)
	}
}
