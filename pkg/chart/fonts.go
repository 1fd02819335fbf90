package chart

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontSet holds the parsed Go font family, shared across renders.
type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

func loadFonts() (*fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold}, nil
}

// face builds a font face at the given point size for the render DPI.
func (f *fontSet) face(points float64, bold bool, dpi int) (font.Face, error) {
	src := f.regular
	if bold {
		src = f.bold
	}
	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    points,
		DPI:     float64(dpi),
		Hinting: font.HintingFull,
	})
}
