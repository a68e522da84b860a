package syncutil

import (
	"fmt"
	"sync"
	"time"
)

// One Start/WaitForSet round at a time, instantiated once for many rounds.
// The set side fails instead of blocking when no round is in progress.
// Usage:
//
//	w.Start(5*time.Second)
//	... // sync/async call to w.Set()
//	v, err := w.WaitForSet()
type WaitForSet struct {
	sync.Mutex
	ch      chan interface{}
	timeout time.Duration
}

func NewWaitForSet() *WaitForSet {
	return &WaitForSet{}
}

//----------

func (w *WaitForSet) Start(timeout time.Duration) {
	w.Lock()
	defer w.Unlock()
	if w.ch != nil {
		panic("waitforset: already started")
	}
	w.ch = make(chan interface{}, 1)
	w.timeout = timeout
}

func (w *WaitForSet) WaitForSet() (interface{}, error) {
	w.Lock()
	ch, timeout := w.ch, w.timeout
	w.Unlock()
	if ch == nil {
		panic("waitforset: not started")
	}
	defer w.finish()
	select {
	case v := <-ch:
		return v, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("waitforset: timeout")
	}
}

// In case WaitForSet is not going to be called.
func (w *WaitForSet) Cancel() {
	w.finish()
}

func (w *WaitForSet) finish() {
	w.Lock()
	defer w.Unlock()
	w.ch = nil
}

//----------

// Fails if a round is not in progress (ex: the waiter timed out).
func (w *WaitForSet) Set(v interface{}) error {
	w.Lock()
	defer w.Unlock()
	if w.ch == nil {
		return fmt.Errorf("waitforset: not waiting for set")
	}
	select {
	case w.ch <- v:
		return nil
	default:
		return fmt.Errorf("waitforset: already set")
	}
}
