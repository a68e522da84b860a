package xdriver

import (
	"encoding/binary"
	"image"
	"image/draw"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/pointcloud/driver/xdriver/wimage"
	"github.com/jmigpin/pointcloud/driver/xdriver/xcursors"
	"github.com/jmigpin/pointcloud/driver/xdriver/xinput"
	"github.com/jmigpin/pointcloud/driver/xdriver/xutil"
	"github.com/jmigpin/pointcloud/util/uiutil/event"
	"github.com/pkg/errors"
)

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	closeOnce sync.Once

	Cursors *xcursors.Cursors
	XInput  *xinput.XInput

	WImg wimage.WImage
}

func NewWindow() (*Window, error) {
	display := os.Getenv("DISPLAY")

	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		err2 := errors.Wrap(err, "x conn")
		return nil, err2
	}

	win := &Window{Conn: conn}

	if err := win.initialize(); err != nil {
		return nil, errors.Wrap(err, "win init")
	}

	return win, nil
}
func (win *Window) initialize() error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	// event mask
	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskKeyPress |
		xproto.EventMaskKeyRelease |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, 800, 600,
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	_ = xproto.MapWindow(win.Conn, window)

	if err := xutil.LoadAtoms(win.Conn, &Atoms, false); err != nil {
		return err
	}
	if err := win.setupWMProtocols(); err != nil {
		return err
	}

	// graphical context
	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx

	gmask := uint32(0)
	gvalues := []uint32{}
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), gmask, gvalues)
	if err := c2.Check(); err != nil {
		return err
	}

	xi, err := xinput.NewXInput(win.Conn)
	if err != nil {
		return err
	}
	win.XInput = xi

	c, err := xcursors.NewCursors(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Cursors = c

	wimage.Init(win.Conn)
	opt := &wimage.Options{win.Conn, win.Window, win.Screen, win.GCtx}
	img, err := wimage.NewWImage(opt)
	if err != nil {
		return err
	}
	win.WImg = img

	return nil
}

// Asks the window manager to send a client message instead of killing the
// connection when the user closes the window.
// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1
func (win *Window) setupWMProtocols() error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(Atoms.WMDeleteWindow))
	cookie := xproto.ChangePropertyChecked(
		win.Conn,
		xproto.PropModeAppend,
		win.Window,
		Atoms.WMProtocols, // property
		xproto.AtomAtom,   // type
		32,                // format
		uint32(len(data))/4,
		data)
	return cookie.Check()
}

func (win *Window) clientMessageIsDeleteWindow(ev *xproto.ClientMessageEvent) bool {
	if ev.Type != Atoms.WMProtocols {
		return false
	}
	if ev.Format != 32 {
		log.Printf("ev format not 32: %+v", ev)
		return false
	}
	for _, e := range ev.Data.Data32 {
		if xproto.Atom(e) == Atoms.WMDeleteWindow {
			return true
		}
	}
	return false
}

func (win *Window) Close() {
	win.closeOnce.Do(func() {
		if err := win.WImg.Close(); err != nil {
			log.Printf("%v", err)
		}
		win.Conn.Close()
	})
}

func (win *Window) EventLoop(events chan<- interface{}) {
	for {
		if !win.handleEvent(events) {
			break
		}
	}
}

func (win *Window) handleEvent(events chan<- interface{}) bool {
	ev, xerr := win.Conn.WaitForEvent()
	if ev == nil && xerr == nil {
		// connection closed
		events <- &event.WindowClose{}
		return false
	}
	if xerr != nil {
		events <- error(xerr)
	}
	if ev != nil {
		switch t := ev.(type) {
		case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
			events <- &event.WindowExpose{}
		case xproto.ExposeEvent: // region needs paint
			events <- &event.WindowExpose{}
		case xproto.MapNotifyEvent: // window mapped (created)

		case shm.CompletionEvent:
			win.WImg.PutImageCompleted()

		case xproto.MappingNotifyEvent: // keyboard mapping
			if err := win.XInput.ReadMapTable(); err != nil {
				events <- err
			}

		case xproto.KeyPressEvent:
			events <- win.XInput.KeyPress(&t)
		case xproto.KeyReleaseEvent:
			events <- win.XInput.KeyRelease(&t)
		case xproto.ButtonPressEvent:
			events <- win.XInput.ButtonPress(&t)
		case xproto.ButtonReleaseEvent:
			events <- win.XInput.ButtonRelease(&t)
		case xproto.MotionNotifyEvent:
			events <- win.XInput.MotionNotify(&t)

		case xproto.ClientMessageEvent:
			if win.clientMessageIsDeleteWindow(&t) {
				events <- &event.WindowClose{}
			}

		default:
			log.Printf("unhandled event: %#v", ev)
		}
	}
	return true
}

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,       // requestor window
		Atoms.NetWMName,  // property
		Atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}
func (win *Window) PutImage(rect image.Rectangle) error {
	return win.WImg.PutImage(rect)
}
func (win *Window) UpdateImageSize() error {
	geom, err := xproto.GetGeometry(win.Conn, xproto.Drawable(win.Window)).Reply()
	if err != nil {
		return err
	}
	r := image.Rect(0, 0, int(geom.Width), int(geom.Height))
	ib := win.Image().Bounds()
	if !r.Eq(ib) {
		if err := win.WImg.Resize(r); err != nil {
			return err
		}
	}
	return nil
}

func (win *Window) SetCursor(c event.Cursor) {
	sc := func(c2 xcursors.Cursor) {
		if err := win.Cursors.SetCursor(c2); err != nil {
			log.Print(err)
		}
	}
	switch c {
	case event.NoneCursor:
		sc(xcursors.XCNone)
	case event.DefaultCursor:
		sc(xcursors.XCNone)
	case event.PointerCursor:
		sc(xcursor.Hand2)
	case event.MoveCursor:
		sc(xcursor.Fleur)
	case event.CrosshairCursor:
		sc(xcursor.Crosshair)
	case event.WaitCursor:
		sc(xcursor.Watch)
	}
}

//----------

var Atoms struct {
	NetWMName      xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String     xproto.Atom `loadAtoms:"UTF8_STRING"`
	WMProtocols    xproto.Atom `loadAtoms:"WM_PROTOCOLS"`
	WMDeleteWindow xproto.Atom `loadAtoms:"WM_DELETE_WINDOW"`
}
