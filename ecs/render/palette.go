package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var palette = map[string]color.Color{
	"player":   colornames.Royalblue,
	"pursuer":  colornames.Crimson,
	"wanderer": colornames.Goldenrod,
	"sword":    colornames.Silver,
	"claw":     colornames.Darkorange,
	"dirt":     colornames.Saddlebrown,
	"grass":    colornames.Darkolivegreen,
	"wall":     colornames.Dimgray,
}

var fallbackColor color.Color = colornames.Magenta

// RegisterColor sets the fill color used for footprints with label.
func RegisterColor(label string, c color.Color) {
	if label == "" || c == nil {
		return
	}
	palette[label] = c
}

// ColorFor returns the fill color for label, magenta when unknown.
func ColorFor(label string) color.Color {
	if c, ok := palette[label]; ok {
		return c
	}
	return fallbackColor
}
