package uiutil

import (
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/jmigpin/pointcloud/driver"
	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

// Owns the window and rations paints to the frame rate. The owner reacts
// through the OnResize/OnPaint hooks and marks when content changed.
type BasicUI struct {
	DrawFrameRate int // frames per second
	Win           driver.Window

	// set by the owner before events start flowing
	OnResize func(image.Rectangle)
	OnPaint  func(draw.Image)

	events     chan<- interface{}
	lastPaint  time.Time
	needsPaint bool
	imgBounds  image.Rectangle
	curCursor  event.Cursor
}

func NewBasicUI(events chan<- interface{}, winName string) (*BasicUI, error) {
	win, err := driver.NewWindow()
	if err != nil {
		return nil, err
	}
	win.SetWindowName(winName)

	ui := &BasicUI{
		DrawFrameRate: 37,
		Win:           win,
		events:        events,
	}

	// window event loop with a mousemove event filter in between
	events2 := make(chan interface{}, cap(events))
	go ui.Win.EventLoop(events2)
	go MouseMoveFilterLoop(events2, events, &ui.DrawFrameRate)

	return ui, nil
}

func (ui *BasicUI) Close() {
	ui.Win.Close()
}

//----------

// Handles window-level events. Returns false on events the owner handles
// (input).
func (ui *BasicUI) HandleEvent(ev interface{}) bool {
	switch t := ev.(type) {
	case *event.WindowExpose:
		ui.UpdateImageSize()
		ui.MarkNeedsPaint()
	case *UIRunFuncEvent:
		t.Func()
	case struct{}:
		// no op, lets the loop iterate to reach PaintIfTime
	default:
		return false
	}
	return true
}

func (ui *BasicUI) UpdateImageSize() {
	if err := ui.Win.UpdateImageSize(); err != nil {
		log.Println(err)
		return
	}
	b := ui.Win.Image().Bounds()
	if !ui.imgBounds.Eq(b) {
		ui.imgBounds = b
		if ui.OnResize != nil {
			ui.OnResize(b)
		}
		ui.MarkNeedsPaint()
	}
}

//----------

func (ui *BasicUI) MarkNeedsPaint() {
	ui.needsPaint = true
}

// This function should be called in the event loop after every event.
func (ui *BasicUI) PaintIfTime() {
	if !ui.needsPaint {
		return
	}
	now := time.Now()
	d := now.Sub(ui.lastPaint)
	if d > (time.Second / time.Duration(ui.DrawFrameRate)) {
		ui.paintNow()
		ui.lastPaint = now
	} else if len(ui.events) == 0 {
		// Didn't paint to avoid high fps. Send a no op event just to
		// allow the loop to iterate and reach here again in time.
		ui.EnqueueNoOpEvent()
	}
}

func (ui *BasicUI) paintNow() {
	ui.needsPaint = false
	img := ui.Win.Image()
	if img.Bounds().Empty() {
		return
	}
	if ui.OnPaint != nil {
		ui.OnPaint(img)
	}
	if err := ui.Win.PutImage(img.Bounds()); err != nil {
		log.Println(err)
	}
}

//----------

func (ui *BasicUI) EnqueueNoOpEvent() {
	ui.events <- struct{}{}
}
func (ui *BasicUI) RequestPaint() {
	ui.MarkNeedsPaint()
	ui.EnqueueNoOpEvent()
}

func (ui *BasicUI) Image() draw.Image {
	return ui.Win.Image()
}

func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

//----------

func (ui *BasicUI) RunOnUIThread(f func()) {
	ui.events <- &UIRunFuncEvent{f}
}

type UIRunFuncEvent struct {
	Func func()
}
