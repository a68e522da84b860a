package fontutil

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
)

var facesMan = newFacesManager()

// DefaultFace is the builtin fallback face (go medium ttf).
func DefaultFace() font.Face {
	ff, err := facesMan.Face(gomedium.TTF, nil)
	if err != nil {
		panic(err) // builtin font always parses
	}
	return ff
}

// DefaultFaceOpt is DefaultFace with explicit truetype options.
func DefaultFaceOpt(opt *truetype.Options) font.Face {
	ff, err := facesMan.Face(gomedium.TTF, opt)
	if err != nil {
		panic(err) // builtin font always parses
	}
	return ff
}

// FaceFromPath loads a truetype font file. A nil opt takes the defaults.
func FaceFromPath(path string, opt *truetype.Options) (font.Face, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return facesMan.Face(ttf, opt)
}

//----------

// Caches parsed fonts and built faces (faces keep internal glyph caches,
// reuse matters).
type facesManager struct {
	fonts map[string]*truetype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	font *truetype.Font
	opt  truetype.Options
}

func newFacesManager() *facesManager {
	return &facesManager{
		fonts: map[string]*truetype.Font{},
		faces: map[faceKey]font.Face{},
	}
}

func (fm *facesManager) Face(ttf []byte, opt *truetype.Options) (font.Face, error) {
	f, ok := fm.fonts[string(ttf)]
	if !ok {
		f2, err := truetype.Parse(ttf)
		if err != nil {
			return nil, err
		}
		f = f2
		fm.fonts[string(ttf)] = f
	}
	if opt == nil {
		opt = &truetype.Options{DPI: 0, Size: 14, Hinting: font.HintingFull}
	}
	k := faceKey{f, *opt}
	ff, ok := fm.faces[k]
	if !ok {
		ff = truetype.NewFace(f, opt)
		fm.faces[k] = ff
	}
	return ff, nil
}
