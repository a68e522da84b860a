// Package ui draws the point cloud: a viewport that maps world to image
// coordinates, the cloud view, and a status bar line.
package ui

import (
	"golang.org/x/image/font"

	"github.com/jmigpin/pointcloud/pcloud"
	"github.com/jmigpin/pointcloud/util/uiutil"
)

// UI owns the window and the root composition.
type UI struct {
	*uiutil.BasicUI
	Root *Root
}

func NewUI(events chan<- interface{}, winName string, cloud *pcloud.Cloud, face font.Face) (*UI, error) {
	bui, err := uiutil.NewBasicUI(events, winName)
	if err != nil {
		return nil, err
	}
	ui := &UI{BasicUI: bui, Root: NewRoot(cloud, face)}
	ui.BasicUI.OnResize = ui.Root.Resize
	ui.BasicUI.OnPaint = ui.Root.Paint
	return ui, nil
}
