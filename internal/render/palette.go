package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette names every color the renderers paint with.
type Palette struct {
	// Frame is the polaroid border fill.
	Frame color.Color

	// Mat is the fill behind the photo region, visible only at
	// sub-pixel crop edges.
	Mat color.Color

	// Page is the album page background.
	Page color.Color

	// Title and Subtitle color the two album header lines.
	Title    color.Color
	Subtitle color.Color

	// Ink is the caption text color.
	Ink color.Color

	// Shadow is the drop shadow tint before blurring.
	Shadow color.Color
}

// DefaultPalette returns the warm paper-and-ink scheme used by both
// renderers.
func DefaultPalette() Palette {
	return Palette{
		Frame:    mustHex("#fdfdf8"),
		Mat:      mustHex("#e8e4da"),
		Page:     mustHex("#f5efe2"),
		Title:    mustHex("#3d2f23"),
		Subtitle: mustHex("#7a6a55"),
		Ink:      mustHex("#1a1a1a"),
		Shadow:   color.NRGBA{A: 96},
	}
}

func mustHex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("palette: bad hex color " + s)
	}
	return c
}
