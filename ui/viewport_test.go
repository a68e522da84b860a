package ui

import (
	"image"
	"math"
	"testing"

	"github.com/jmigpin/pointcloud/pcloud"
)

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport()
	vp.Center = pcloud.P(2, -3)
	vp.Width = 8
	r := image.Rect(0, 0, 400, 300)

	pts := []image.Point{
		{0, 0},
		{399, 299},
		{200, 150},
		{13, 250},
	}
	for _, ip := range pts {
		w := vp.FromImage(ip, r)
		ip2, vis := vp.ToImage(w, r)
		if !vis {
			t.Fatalf("%v: world %v not visible", ip, w)
		}
		if ip2 != ip {
			t.Fatalf("%v: round trip gave %v (world %v)", ip, ip2, w)
		}
	}
}

func TestViewportToImage(t *testing.T) {
	vp := NewViewport()
	vp.Width = 10
	r := image.Rect(0, 0, 100, 100) // 0.1 world units per pixel

	// center of the view is the viewport center
	ip, vis := vp.ToImage(pcloud.P(0, 0), r)
	if !vis || ip != (image.Point{50, 50}) {
		t.Fatalf("center: %v %v", ip, vis)
	}
	// world y up, image y down
	ip, vis = vp.ToImage(pcloud.P(0, 4), r)
	if !vis || ip.Y >= 50 {
		t.Fatalf("above center: %v %v", ip, vis)
	}
	// outside the horizontal span
	if _, vis := vp.ToImage(pcloud.P(6, 0), r); vis {
		t.Fatal("expected not visible")
	}
}

func TestViewportTranslateScale(t *testing.T) {
	vp := NewViewport()
	vp.Translate(2, -1)
	if vp.Center != pcloud.P(2, -1) {
		t.Fatalf("center: %v", vp.Center)
	}

	vp.Width = 10
	vp.Scale(2)
	if vp.Width != 20 {
		t.Fatalf("width: %v", vp.Width)
	}
	// clamped at both ends
	vp.Scale(math.Inf(1))
	if vp.Width != maxViewportWidth {
		t.Fatalf("width not clamped: %v", vp.Width)
	}
	vp.Scale(0)
	if vp.Width != minViewportWidth {
		t.Fatalf("width not clamped: %v", vp.Width)
	}
}
