package core

import (
	"errors"
	"testing"

	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

type nopTool struct {
	name string
}

func (t *nopTool) Name() string                 { return t.name }
func (t *nopTool) OnMouseDown(*event.MouseDown) {}
func (t *nopTool) OnMouseMove(*event.MouseMove) {}
func (t *nopTool) OnMouseUp(*event.MouseUp)     {}
func (t *nopTool) OnWheel(dy float64)           {}

func TestToolBoxEmpty(t *testing.T) {
	tb := NewToolBox()
	if _, err := tb.Active(); !errors.Is(err, ErrNoTools) {
		t.Fatalf("expected ErrNoTools, got %v", err)
	}
	if err := tb.Select(0); err == nil {
		t.Fatal("expected error")
	}
}

func TestToolBoxDefaultsToFirst(t *testing.T) {
	a, b := &nopTool{"a"}, &nopTool{"b"}
	tb := NewToolBox(a, b)
	tool, err := tb.Active()
	if err != nil {
		t.Fatal(err)
	}
	if tool != Tool(a) {
		t.Fatalf("expected first tool, got %v", tool.Name())
	}
}

func TestToolBoxSelect(t *testing.T) {
	a, b := &nopTool{"a"}, &nopTool{"b"}
	tb := NewToolBox(a, b)
	if err := tb.Select(1); err != nil {
		t.Fatal(err)
	}
	tool, err := tb.Active()
	if err != nil {
		t.Fatal(err)
	}
	if tool != Tool(b) {
		t.Fatalf("expected second tool, got %v", tool.Name())
	}
	if err := tb.Select(2); err == nil {
		t.Fatal("expected error")
	}
	if err := tb.Select(-1); err == nil {
		t.Fatal("expected error")
	}
}
