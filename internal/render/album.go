package render

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
)

// Album page geometry. The page is designed at A4 print proportions
// (2480x3508) and rendered at 1.5x scale.
const (
	albumBaseWidth  = 2480
	albumBaseHeight = 3508

	// AlbumWidth and AlbumHeight are the exact output pixel dimensions
	// of every album render.
	AlbumWidth  = albumBaseWidth * 3 / 2
	AlbumHeight = albumBaseHeight * 3 / 2
)

// Grid layout, in base (pre-scale) units.
const (
	albumCols = 3
	albumRows = 3

	// AlbumCells is the entry count every album render requires.
	AlbumCells = albumCols * albumRows

	albumHeaderHeight = 420.0
	albumBorder       = 100.0
	albumCellGap      = 60.0

	albumTitleY       = 200.0
	albumTitleSize    = 110.0
	albumSubtitleY    = 330.0
	albumSubtitleSize = 52.0
)

// Per-cell polaroid proportions: the frame is 1.2x as tall as wide, fit
// within 90% of its grid cell, limited by whichever dimension constrains.
const (
	cellPolaroidAspect = 1.2
	cellPolaroidFill   = 0.9

	cellPhotoMarginFrac = 0.08 // of polaroid width
	cellCaptionFrac     = 0.22 // of polaroid height
	cellCaptionSizeFrac = 0.09 // of polaroid width

	cellShadowBlur    = 12.0
	cellShadowOffsetX = 6.0
	cellShadowOffsetY = 10.0
)

// maxTilt bounds the per-item rotation in radians. Tilt is sampled
// uniformly from (-maxTilt, +maxTilt).
const maxTilt = 0.08

// Entry pairs a decade label with the image source it captions. Album
// input is a slice rather than a map so the decade-to-image pairing is
// positional and stable.
type Entry struct {
	Decade string
	Source string
}

// AlbumRenderer composes nine captioned polaroids into a single titled
// page.
//
// Title and Subtitle are the two header lines; both have defaults. Rand,
// when non-nil, supplies the per-item tilt for deterministic output;
// when nil each render seeds its own generator and output varies between
// calls.
type AlbumRenderer struct {
	Title    string
	Subtitle string

	// Rand supplies tilt randomness. Shared use across concurrent
	// renders is the caller's problem; leave nil for independent runs.
	Rand *rand.Rand

	loader  SourceLoader
	fonts   *FontSet
	palette Palette
}

// NewAlbumRenderer creates a renderer with default titles and palette.
func NewAlbumRenderer(loader SourceLoader, fonts *FontSet) *AlbumRenderer {
	return &AlbumRenderer{
		Title:    "Memory Lane",
		Subtitle: "a life in nine decades",
		loader:   loader,
		fonts:    fonts,
		palette:  DefaultPalette(),
	}
}

// Render loads every entry's image concurrently, lays the photos out in a
// 3x3 polaroid grid under the page header, and returns the page as a JPEG
// data URL of exactly AlbumWidth x AlbumHeight pixels.
//
// Exactly AlbumCells entries are required; any other count is an error.
// Pairing is positional: entries[i] always keeps its own photo and decade
// caption no matter which load completes first. A single load failure
// fails the whole render with no partial page.
//
// Cells are drawn in reverse grid order so that, combined with the random
// per-item tilt, earlier cells overlap on top of later ones: the
// scattered-stack look is intentional.
func (r *AlbumRenderer) Render(ctx context.Context, entries []Entry) (string, error) {
	if len(entries) != AlbumCells {
		return "", fmt.Errorf("album requires exactly %d entries, got %d", AlbumCells, len(entries))
	}

	sources := make([]string, len(entries))
	for i, e := range entries {
		sources[i] = e.Source
	}
	images, err := r.loader.LoadAll(ctx, sources)
	if err != nil {
		return "", err
	}

	dc, err := newSurface(AlbumWidth, AlbumHeight)
	if err != nil {
		return "", err
	}

	const s = 1.5
	w := float64(AlbumWidth)
	h := float64(AlbumHeight)

	dc.SetColor(r.palette.Page)
	dc.Clear()

	// Header: two centered lines at fixed offsets.
	dc.SetFontFace(r.fonts.TitleFace(albumTitleSize * s))
	dc.SetColor(r.palette.Title)
	dc.DrawStringAnchored(r.Title, w/2, albumTitleY*s, 0.5, 0.5)

	dc.SetFontFace(r.fonts.SubtitleFace(albumSubtitleSize * s))
	dc.SetColor(r.palette.Subtitle)
	dc.DrawStringAnchored(r.Subtitle, w/2, albumSubtitleY*s, 0.5, 0.5)

	// Grid cells divide what remains below the header.
	border := albumBorder * s
	gap := albumCellGap * s
	gridTop := albumHeaderHeight * s
	cellW := (w - 2*border - (albumCols-1)*gap) / albumCols
	cellH := (h - gridTop - border - (albumRows-1)*gap) / albumRows

	pw := cellPolaroidFill * cellW
	ph := pw * cellPolaroidAspect
	if ph > cellPolaroidFill*cellH {
		ph = cellPolaroidFill * cellH
		pw = ph / cellPolaroidAspect
	}

	shadow := dropShadow(int(pw), int(ph), cellShadowBlur*s, r.palette.Shadow)
	rng := r.rng()

	for i := len(entries) - 1; i >= 0; i-- {
		col := i % albumCols
		row := i / albumCols
		cx := border + float64(col)*(cellW+gap) + cellW/2
		cy := gridTop + float64(row)*(cellH+gap) + cellH/2
		tilt := sampleTilt(rng)

		r.drawCell(dc, images[i], entries[i].Decade, cx, cy, pw, ph, tilt, shadow, s)
	}

	return encodeDataURL(dc.Image())
}

// drawCell paints one tilted polaroid centered at (cx, cy): shadow, white
// frame, cover-cropped photo near the top, decade caption below.
func (r *AlbumRenderer) drawCell(dc *gg.Context, img image.Image, decade string, cx, cy, pw, ph, tilt float64, shadow image.Image, s float64) {
	dc.Push()
	dc.RotateAbout(tilt, cx, cy)

	dc.DrawImageAnchored(shadow, int(cx+cellShadowOffsetX*s), int(cy+cellShadowOffsetY*s), 0.5, 0.5)

	dc.SetColor(r.palette.Frame)
	dc.DrawRectangle(cx-pw/2, cy-ph/2, pw, ph)
	dc.Fill()

	margin := pw * cellPhotoMarginFrac
	photoW := pw - 2*margin
	photoH := ph - margin - ph*cellCaptionFrac
	photoCY := cy - ph/2 + margin + photoH/2

	photo := cover(img, int(photoW), int(photoH))
	dc.DrawImageAnchored(photo, int(cx), int(photoCY), 0.5, 0.5)

	dc.SetFontFace(r.fonts.CaptionFace(pw * cellCaptionSizeFrac))
	dc.SetColor(r.palette.Ink)
	bandTop := cy - ph/2 + margin + photoH
	dc.DrawStringAnchored(decade, cx, (bandTop+cy+ph/2)/2, 0.5, 0.5)

	dc.Pop()
}

func (r *AlbumRenderer) rng() *rand.Rand {
	if r.Rand != nil {
		return r.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// sampleTilt draws one rotation from (-maxTilt, +maxTilt) radians,
// symmetric around zero.
func sampleTilt(rng *rand.Rand) float64 {
	return (rng.Float64() - 0.5) * 2 * maxTilt
}
