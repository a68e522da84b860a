package core

import (
	"errors"
	"fmt"

	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

// Tool is one interaction mode. The app routes input to the active tool
// only; each tool keeps its own drag state.
type Tool interface {
	Name() string
	OnMouseDown(*event.MouseDown)
	OnMouseMove(*event.MouseMove)
	OnMouseUp(*event.MouseUp)
	OnWheel(dy float64)
}

var ErrNoTools = errors.New("toolbox: no tools")

// ToolBox holds the interchangeable tools and the active selector.
type ToolBox struct {
	tools  []Tool
	active int // -1 when never selected
}

func NewToolBox(tools ...Tool) *ToolBox {
	return &ToolBox{tools: tools, active: -1}
}

// Active returns the selected tool, defaulting to the first when none was
// selected yet. Fails when the toolbox is empty.
func (tb *ToolBox) Active() (Tool, error) {
	if len(tb.tools) == 0 {
		return nil, ErrNoTools
	}
	if tb.active < 0 {
		return tb.tools[0], nil
	}
	return tb.tools[tb.active], nil
}

func (tb *ToolBox) Select(i int) error {
	if i < 0 || i >= len(tb.tools) {
		return fmt.Errorf("toolbox: no tool %v", i)
	}
	tb.active = i
	return nil
}

func (tb *ToolBox) Len() int {
	return len(tb.tools)
}
