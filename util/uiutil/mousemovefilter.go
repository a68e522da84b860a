package uiutil

import (
	"time"

	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

// Coalesces mousemove events to the frame rate so a flood of moves can't
// outrun the paint loop. Any other event flushes the kept move first to
// preserve ordering.
func MouseMoveFilterLoop(in <-chan interface{}, out chan<- interface{}, fps *int) {
	var kept interface{}
	var ticker *time.Ticker
	var timeToSend <-chan time.Time
	var lastSent time.Time

	keep := func(ev interface{}) {
		kept = ev
		if ticker != nil {
			return
		}
		frameDur := time.Second / time.Duration(*fps)
		now := time.Now()
		if now.Sub(lastSent) >= frameDur {
			// frame duration already passed, send immediately
			lastSent = now
			out <- kept
			kept = nil
		} else {
			ticker = time.NewTicker(frameDur - now.Sub(lastSent))
			timeToSend = ticker.C
		}
	}

	flush := func() {
		ticker.Stop()
		ticker = nil
		timeToSend = nil
		lastSent = time.Now()
		out <- kept
		kept = nil
	}

	for {
		select {
		case ev, ok := <-in:
			if !ok {
				if ticker != nil {
					flush()
				}
				return
			}
			if wi, ok := ev.(*event.WindowInput); ok {
				if _, ok := wi.Event.(*event.MouseMove); ok {
					keep(ev)
					continue
				}
			}
			if ticker != nil {
				flush()
			}
			out <- ev
		case <-timeToSend:
			flush()
		}
	}
}
