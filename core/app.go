// Package core wires the cloud, the UI and the interaction tools into an
// application with a single event-loop goroutine. All cloud mutations and
// queries happen on that goroutine; the drivers only post events.
package core

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/jmigpin/pointcloud/pcloud"
	"github.com/jmigpin/pointcloud/ui"
	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

type App struct {
	Opt     *Options
	Cloud   *pcloud.Cloud
	UI      *ui.UI
	ToolBox *ToolBox
	CFile   *CloudFile

	events   chan interface{}
	pointerW pcloud.Point // last pointer world position, for the status bar
}

func RunApp(opt *Options) error {
	pcloud.Debug = opt.Debug

	app := &App{Opt: opt}
	app.Cloud = app.newCloud()

	if opt.Filename != "" {
		app.CFile = NewCloudFile(opt.Filename)
		pts, err := app.CFile.Load()
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		for _, p := range pts {
			app.Cloud.Push(p)
		}
	}

	face, err := opt.fontFace()
	if err != nil {
		return errors.Wrap(err, "font")
	}

	app.events = make(chan interface{}, 32)
	ui0, err := ui.NewUI(app.events, "Point Cloud", app.Cloud, face)
	if err != nil {
		return err
	}
	app.UI = ui0

	app.ToolBox = NewToolBox(
		NewSelectTool(app),
		NewAddTool(app),
		NewPanTool(app),
	)

	if app.CFile != nil {
		if err := app.CFile.Watch(app.events); err != nil {
			log.Println(err)
		}
		defer app.CFile.Close()
	}

	return app.eventLoop()
}

func (app *App) newCloud() *pcloud.Cloud {
	var c *pcloud.Cloud
	if app.Opt.Unsorted {
		c = pcloud.NewUnsorted()
	} else {
		c = pcloud.New()
	}
	if app.Opt.Radius > 0 {
		c.TestRadius = app.Opt.Radius
	}
	return c
}

//----------

func (app *App) eventLoop() error {
	defer app.UI.Close()
	for {
		ev := <-app.events
		switch t := ev.(type) {
		case error:
			log.Println(t)
		case *event.WindowClose:
			return nil
		case *CloudFileChange:
			app.reloadCloudFile()
		default:
			if !app.UI.HandleEvent(ev) {
				app.onInput(ev)
			}
		}
		app.updateStatus()
		app.UI.PaintIfTime()
	}
}

func (app *App) onInput(ev interface{}) {
	wi, ok := ev.(*event.WindowInput)
	if !ok {
		log.Printf("unhandled event: %#v", ev)
		return
	}
	tool, err := app.ToolBox.Active()
	if err != nil {
		log.Println(err)
		return
	}
	switch t := wi.Event.(type) {
	case *event.KeyDown:
		app.onKeyDown(t)
	case *event.MouseDown:
		switch t.Button {
		case event.ButtonWheelUp:
			tool.OnWheel(1)
		case event.ButtonWheelDown:
			tool.OnWheel(-1)
		default:
			tool.OnMouseDown(t)
		}
	case *event.MouseUp:
		switch t.Button {
		case event.ButtonWheelUp, event.ButtonWheelDown:
			// handled on press
		default:
			tool.OnMouseUp(t)
		}
	case *event.MouseMove:
		app.pointerW = app.world(t.Point)
		tool.OnMouseMove(t)
	}
}

func (app *App) onKeyDown(ev *event.KeyDown) {
	ru := ev.LowerRune()

	// digits select tools
	if ru >= '1' && ru <= '9' {
		i := int(ru - '1')
		if i < app.ToolBox.Len() {
			if err := app.ToolBox.Select(i); err != nil {
				log.Println(err)
			}
		}
		return
	}

	if ev.Mods.ClearLocks().Is(event.ModCtrl) && ru == 's' {
		app.saveCloudFile()
	}
}

//----------

func (app *App) saveCloudFile() {
	if app.CFile == nil {
		return
	}
	if err := app.CFile.Save(app.Cloud.Points()); err != nil {
		log.Println(err)
	}
}

// reloadCloudFile rebuilds the cloud from the file. The store has no
// delete, replacing it wholesale is the only way to drop points.
func (app *App) reloadCloudFile() {
	pts, err := app.CFile.Load()
	if err != nil {
		log.Println(err)
		return
	}
	c := app.newCloud()
	for _, p := range pts {
		c.Push(p)
	}
	app.Cloud = c
	app.UI.Root.CloudView.SetCloud(c)
	app.UI.MarkNeedsPaint()
}

//----------

// world maps a window image point to world units through the cloud view's
// viewport.
func (app *App) world(ip image.Point) pcloud.Point {
	cv := app.UI.Root.CloudView
	return cv.Viewport.FromImage(ip, cv.Bounds)
}

func (app *App) setHighlight(si int) {
	cv := app.UI.Root.CloudView
	if cv.Highlight == si {
		return
	}
	cv.Highlight = si
	if si >= 0 {
		app.UI.SetCursor(event.PointerCursor)
	} else {
		app.UI.SetCursor(event.DefaultCursor)
	}
	app.UI.MarkNeedsPaint()
}

func (app *App) updateStatus() {
	tool, err := app.ToolBox.Active()
	name := "-"
	if err == nil {
		name = tool.Name()
	}
	mode := "sorted"
	if !app.Cloud.Sorted() {
		mode = "unsorted"
	}
	s := fmt.Sprintf("%v | %v points | %.3f,%.3f | %v",
		name, app.Cloud.Len(), app.pointerW.X, app.pointerW.Y, mode)
	sb := app.UI.Root.StatusBar
	if sb.Text != s {
		sb.Text = s
		app.UI.MarkNeedsPaint()
	}
}
