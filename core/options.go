package core

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/jmigpin/pointcloud/util/fontutil"
)

type Options struct {
	Font     string
	FontSize float64
	DPI      float64

	Radius   float64 // world units, bounds point hit testing
	Unsorted bool    // skip order index maintenance (no hit testing)
	Debug    bool    // consistency checks after every cloud mutation

	CpuProfile string
	Filename   string
}

func (opt *Options) fontFace() (font.Face, error) {
	tto := &truetype.Options{
		Size:    opt.FontSize,
		DPI:     opt.DPI,
		Hinting: font.HintingFull,
	}
	if opt.Font == "" {
		return fontutil.DefaultFaceOpt(tto), nil
	}
	return fontutil.FaceFromPath(opt.Font, tto)
}
