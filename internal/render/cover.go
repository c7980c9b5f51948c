package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// cover scales img to completely fill a w x h container, preserving aspect
// ratio and center-cropping the overflow.
//
// A source relatively wider than the container is scaled to the container
// height and trimmed equally on both sides; a relatively taller source is
// scaled to the container width and trimmed top and bottom. The result is
// exactly w x h.
func cover(img image.Image, w, h int) image.Image {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return imaging.New(w, h, color.Transparent)
	}

	srcAspect := float64(srcW) / float64(srcH)
	dstAspect := float64(w) / float64(h)

	var scaled *image.NRGBA
	if srcAspect > dstAspect {
		scaled = imaging.Resize(img, 0, h, imaging.Lanczos)
	} else {
		scaled = imaging.Resize(img, w, 0, imaging.Lanczos)
	}

	return imaging.CropCenter(scaled, w, h)
}
