package render

import (
	"context"
)

// Polaroid geometry. The composition is designed on a 320-wide, 3:4
// logical canvas and rendered at 2x pixel density for sharpness. The
// output dimensions are fixed constants of the design, not derived from
// the input image.
const (
	polaroidBaseWidth = 320
	polaroidScale     = 2

	// PolaroidWidth and PolaroidHeight are the exact output pixel
	// dimensions of every polaroid render.
	PolaroidWidth  = polaroidBaseWidth * polaroidScale
	PolaroidHeight = polaroidBaseWidth * 4 * polaroidScale / 3
)

// Logical layout, in base (pre-scale) units: a uniform margin on the top
// and sides, with a taller band at the bottom reserved for the caption.
const (
	polaroidMargin      = 20.0
	polaroidCaptionBand = 70.0
	polaroidCaptionSize = 24.0
)

// PolaroidRenderer composes one photo and one caption into a framed
// polaroid image.
//
// Layout is fully deterministic: identical inputs produce identical
// placement. The zero value is not usable; construct with
// NewPolaroidRenderer.
type PolaroidRenderer struct {
	loader  SourceLoader
	fonts   *FontSet
	palette Palette
}

// NewPolaroidRenderer creates a renderer drawing with the given loader and
// fonts, using the default palette.
func NewPolaroidRenderer(loader SourceLoader, fonts *FontSet) *PolaroidRenderer {
	return &PolaroidRenderer{
		loader:  loader,
		fonts:   fonts,
		palette: DefaultPalette(),
	}
}

// Render loads source, composes it with caption, and returns the finished
// polaroid as a JPEG data URL of exactly PolaroidWidth x PolaroidHeight
// pixels.
//
// The photo fills its container with cover placement; the caption is
// centered in the bottom band with no wrapping or truncation (the caller
// is responsible for caption length). A load failure propagates as
// *LoadError; nothing is retried.
func (r *PolaroidRenderer) Render(ctx context.Context, source, caption string) (string, error) {
	img, err := r.loader.Load(ctx, source)
	if err != nil {
		return "", err
	}

	dc, err := newSurface(PolaroidWidth, PolaroidHeight)
	if err != nil {
		return "", err
	}

	const s = float64(polaroidScale)
	w := float64(PolaroidWidth)
	h := float64(PolaroidHeight)

	dc.SetColor(r.palette.Frame)
	dc.Clear()

	// Photo container: margin on top and sides, caption band below.
	contX := polaroidMargin * s
	contY := polaroidMargin * s
	contW := w - 2*polaroidMargin*s
	contH := h - (polaroidMargin+polaroidCaptionBand)*s

	dc.SetColor(r.palette.Mat)
	dc.DrawRectangle(contX, contY, contW, contH)
	dc.Fill()

	// Clip scoped to the photo draw only; the caption must not be
	// affected.
	photo := cover(img, int(contW), int(contH))
	dc.DrawRectangle(contX, contY, contW, contH)
	dc.Clip()
	dc.DrawImage(photo, int(contX), int(contY))
	dc.ResetClip()

	dc.SetFontFace(r.fonts.CaptionFace(polaroidCaptionSize * s))
	dc.SetColor(r.palette.Ink)
	dc.DrawStringAnchored(caption, w/2, h-polaroidCaptionBand*s/2, 0.5, 0.5)

	return encodeDataURL(dc.Image())
}
