package core

import (
	"errors"
	"image"
	"log"

	"github.com/jmigpin/pointcloud/pcloud"
	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

// SelectTool highlights the point under the pointer and drags it with the
// left button.
type SelectTool struct {
	app     *App
	grabbed int // stable index being dragged, -1 when none
	lastW   pcloud.Point
}

func NewSelectTool(app *App) *SelectTool {
	return &SelectTool{app: app, grabbed: -1}
}

func (st *SelectTool) Name() string { return "select" }

func (st *SelectTool) OnMouseDown(ev *event.MouseDown) {
	if ev.Button != event.ButtonLeft {
		return
	}
	w := st.app.world(ev.Point)
	st.grabbed = st.hitTest(w)
	st.lastW = w
}

func (st *SelectTool) OnMouseMove(ev *event.MouseMove) {
	w := st.app.world(ev.Point)
	if st.grabbed >= 0 && ev.Buttons.Has(event.ButtonLeft) {
		d := w.Sub(st.lastW)
		if err := st.app.Cloud.TranslatePoint(st.grabbed, d.X, d.Y); err != nil {
			log.Println(err)
			st.grabbed = -1
			return
		}
		st.lastW = w
		st.app.setHighlight(st.grabbed)
		st.app.UI.MarkNeedsPaint()
		return
	}
	st.app.setHighlight(st.hitTest(w))
}

func (st *SelectTool) OnMouseUp(ev *event.MouseUp) {
	if ev.Button == event.ButtonLeft {
		st.grabbed = -1
	}
}

func (st *SelectTool) OnWheel(dy float64) {}

// hitTest uses the bounded query when the order indexes exist, and falls
// back to a scan with the same strict-radius rule on an unsorted cloud.
func (st *SelectTool) hitTest(w pcloud.Point) int {
	i, err := st.app.Cloud.TestWorldPoint(w)
	if err == nil {
		return i
	}
	if !errors.Is(err, pcloud.ErrUnsorted) {
		log.Println(err)
		return -1
	}
	found := -1
	best := st.app.Cloud.TestRadius * st.app.Cloud.TestRadius
	for si, p := range st.app.Cloud.Points() {
		if sqd := w.SqDistTo(p); sqd < best {
			found = si
			best = sqd
		}
	}
	return found
}

//----------

// AddTool pushes a new point at the click's world position.
type AddTool struct {
	app *App
}

func NewAddTool(app *App) *AddTool {
	return &AddTool{app: app}
}

func (at *AddTool) Name() string { return "add" }

func (at *AddTool) OnMouseDown(ev *event.MouseDown) {
	if ev.Button != event.ButtonLeft {
		return
	}
	at.app.Cloud.Push(at.app.world(ev.Point))
	at.app.UI.MarkNeedsPaint()
}

func (at *AddTool) OnMouseMove(ev *event.MouseMove) {}
func (at *AddTool) OnMouseUp(ev *event.MouseUp)     {}
func (at *AddTool) OnWheel(dy float64)              {}

//----------

// PanTool drags the viewport and zooms with the wheel.
type PanTool struct {
	app     *App
	panning bool
	lastIP  image.Point
}

func NewPanTool(app *App) *PanTool {
	return &PanTool{app: app}
}

func (pt *PanTool) Name() string { return "pan" }

func (pt *PanTool) OnMouseDown(ev *event.MouseDown) {
	if ev.Button != event.ButtonLeft {
		return
	}
	pt.panning = true
	pt.lastIP = ev.Point
	pt.app.UI.SetCursor(event.MoveCursor)
}

func (pt *PanTool) OnMouseMove(ev *event.MouseMove) {
	if !pt.panning || !ev.Buttons.Has(event.ButtonLeft) {
		return
	}
	cv := pt.app.UI.Root.CloudView
	wpp := cv.Viewport.WorldPerPx(cv.Bounds)
	dx := float64(ev.Point.X-pt.lastIP.X) * wpp
	dy := float64(ev.Point.Y-pt.lastIP.Y) * wpp
	// keep the world point under the pointer fixed (image y is flipped)
	cv.Viewport.Translate(-dx, dy)
	pt.lastIP = ev.Point
	pt.app.UI.MarkNeedsPaint()
}

func (pt *PanTool) OnMouseUp(ev *event.MouseUp) {
	if ev.Button == event.ButtonLeft {
		pt.panning = false
		pt.app.UI.SetCursor(event.DefaultCursor)
	}
}

func (pt *PanTool) OnWheel(dy float64) {
	cv := pt.app.UI.Root.CloudView
	if dy > 0 {
		cv.Viewport.Scale(1 / 1.1)
	} else if dy < 0 {
		cv.Viewport.Scale(1.1)
	}
	pt.app.UI.MarkNeedsPaint()
}
