package core

import (
	"fmt"
	"image/color"
)

// Color is a named fill color. Front ends translate it to their own palette:
// the terminal uses the hex value through lipgloss, the window draws the RGBA.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorGray
)

var palette = map[Color]color.RGBA{
	ColorDefault: {255, 255, 255, 255},
	ColorBlack:   {0, 0, 0, 255},
	ColorWhite:   {255, 255, 255, 255},
	ColorRed:     {200, 50, 50, 255},
	ColorGreen:   {50, 200, 50, 255},
	ColorGray:    {100, 100, 100, 255},
}

// RGBA returns the color as an opaque RGBA value.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}

// Hex returns the color in #RRGGBB form.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}
