//go:build !windows

package driver

import "github.com/jmigpin/pointcloud/driver/xdriver"

func NewWindow() (Window, error) {
	return xdriver.NewWindow()
}
