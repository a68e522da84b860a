package driver

import (
	"image"
	"image/draw"

	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

type Window interface {
	EventLoop(events chan<- interface{}) // should emit events from uiutil/event

	Close()
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	UpdateImageSize() error

	SetCursor(event.Cursor)
}
