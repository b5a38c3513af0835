package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	faceOnce   sync.Once
	faceSource *text.GoTextFaceSource
)

// Face returns the Go Regular face at the given pixel size.
func Face(size float64) text.Face {
	faceOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("assets: load font: %v", err)
		}
		faceSource = s
	})
	return &text.GoTextFace{Source: faceSource, Size: size}
}

// DebugFace is the small bitmap face used for the debug overlay.
func DebugFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}
