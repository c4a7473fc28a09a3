package core

import "image/color"

// Color identifies one entry of the game palette.
// The graphical platform converts it to RGBA, the terminal platform to an ANSI code.
type Color uint8

// Palette used by the photon game.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorRed
	ColorDarkGray
	ColorCyan
	ColorGray
	ColorPurple
)

var paletteRGBA = map[Color]color.RGBA{
	ColorDefault:  {255, 255, 255, 255},
	ColorBlack:    {0, 0, 0, 255},
	ColorWhite:    {255, 255, 255, 255},
	ColorBlue:     {0, 150, 255, 255},
	ColorOrange:   {255, 165, 0, 255},
	ColorYellow:   {255, 255, 0, 255},
	ColorGreen:    {0, 255, 0, 255},
	ColorRed:      {255, 50, 50, 255},
	ColorDarkGray: {30, 30, 30, 255},
	ColorCyan:     {0, 255, 255, 255},
	ColorGray:     {80, 80, 80, 255},
	ColorPurple:   {200, 100, 255, 255},
}

// RGBA returns the 24-bit color for this palette entry.
// Unknown entries render as white.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := paletteRGBA[c]; ok {
		return rgba
	}
	return paletteRGBA[ColorDefault]
}
