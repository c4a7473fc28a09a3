package gui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts holds the faces used on screen.
type fonts struct {
	hud      *text.GoTextFace // Caught counter, panel texts
	heading  *text.GoTextFace // "Applications"
	title    *text.GoTextFace // Intro title, quiz result
	subtitle *text.GoTextFace
	quiz     *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	italic, err := text.NewGoTextFaceSource(bytes.NewReader(goitalic.TTF))
	if err != nil {
		return nil, err
	}

	return &fonts{
		hud:      &text.GoTextFace{Source: regular, Size: 20},
		heading:  &text.GoTextFace{Source: italic, Size: 28},
		title:    &text.GoTextFace{Source: bold, Size: 24},
		subtitle: &text.GoTextFace{Source: regular, Size: 16},
		quiz:     &text.GoTextFace{Source: regular, Size: 22},
	}, nil
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawTextCentered draws s horizontally centered on the screen at y.
func drawTextCentered(dst *ebiten.Image, s string, face text.Face, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	x := (float64(dst.Bounds().Dx()) - w) / 2
	drawText(dst, s, face, max(x, 0), y, clr)
}
