package syncutil

import (
	"testing"
	"time"
)

func TestWaitForSet1(t *testing.T) {
	w := NewWaitForSet()
	w.Start(50 * time.Millisecond)
	go func() {
		if err := w.Set(3); err != nil {
			t.Error(err)
		}
	}()
	v, err := w.WaitForSet()
	if err != nil {
		t.Fatal(err)
	}
	if v.(int) != 3 {
		t.Fatal(v)
	}
}

func TestWaitForSetTimeout(t *testing.T) {
	w := NewWaitForSet()
	w.Start(10 * time.Millisecond)
	if _, err := w.WaitForSet(); err == nil {
		t.Fatal("expecting timeout")
	}
	// the round is over, late set fails
	if err := w.Set(1); err == nil {
		t.Fatal("expexting set failure")
	}
	// reusable after a timeout
	w.Start(50 * time.Millisecond)
	go w.Set(2)
	v, err := w.WaitForSet()
	if err != nil {
		t.Fatal(err)
	}
	if v.(int) != 2 {
		t.Fatal(v)
	}
}

func TestWaitForSetCancel(t *testing.T) {
	w := NewWaitForSet()
	w.Start(time.Second)
	w.Cancel()
	if err := w.Set(1); err == nil {
		t.Fatal("expecting set failure")
	}
}
