package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// fallbackColor is used for items that are not hex colors.
var fallbackColor = color.RGBA{R: 0x88, G: 0x88, B: 0xAA, A: 0xFF}

// ItemColor converts an item to a drawable color. Items that are not hex
// colors get a neutral gray-blue.
func ItemColor(item string) color.Color {
	c, err := colorful.Hex(item)
	if err != nil {
		return fallbackColor
	}
	return c
}

// TrackRGBA is the window counterpart of TrackColor.
func TrackRGBA(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0x90}
}

// WindowScale returns the factor mapping ring pixels to window pixels so
// that extent fits inside a width x height window with margin on every
// side. Rings are drawn at natural size when they already fit.
func WindowScale(width, height int, extent, margin float64) float64 {
	half := float64(min(width, height))/2 - margin
	if extent <= 0 || half <= 0 || extent <= half {
		return 1
	}
	return half / extent
}
