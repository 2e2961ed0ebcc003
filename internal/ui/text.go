package ui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := MeasureText(txt, size)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	face := GetFace(size)
	return text.Measure(txt, face, 0)
}
