package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
)

// dropShadow renders a soft shadow tile for a w x h rectangle: the tint
// painted inside a transparent margin, then gaussian-blurred so the edges
// feather out. The margin is sized so the blur never clips.
func dropShadow(w, h int, radius float64, tint color.Color) image.Image {
	margin := int(radius) * 3
	tile := image.NewRGBA(image.Rect(0, 0, w+2*margin, h+2*margin))

	rect := image.Rect(margin, margin, margin+w, margin+h)
	draw.Draw(tile, rect, image.NewUniform(tint), image.Point{}, draw.Src)

	return blur.Gaussian(tile, radius)
}
