package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSet is an explicit handle to the three font families the renderers
// draw with: the handwriting-style caption face, the page title face, and
// the subtitle face.
//
// Constructing a FontSet up front replaces any ambient "are fonts ready
// yet" state: a renderer holding a FontSet can always draw text.
type FontSet struct {
	caption  *truetype.Font
	title    *truetype.Font
	subtitle *truetype.Font
}

// NewFontSet parses the given TTF data into a FontSet. Any nil slice falls
// back to the corresponding bundled Go font (goitalic for captions, gobold
// for titles, goregular for subtitles), so partial custom font sets are
// fine. Unparseable data is an error.
func NewFontSet(captionTTF, titleTTF, subtitleTTF []byte) (*FontSet, error) {
	fs := DefaultFontSet()

	var err error
	if captionTTF != nil {
		if fs.caption, err = truetype.Parse(captionTTF); err != nil {
			return nil, fmt.Errorf("parse caption font: %w", err)
		}
	}
	if titleTTF != nil {
		if fs.title, err = truetype.Parse(titleTTF); err != nil {
			return nil, fmt.Errorf("parse title font: %w", err)
		}
	}
	if subtitleTTF != nil {
		if fs.subtitle, err = truetype.Parse(subtitleTTF); err != nil {
			return nil, fmt.Errorf("parse subtitle font: %w", err)
		}
	}
	return fs, nil
}

// DefaultFontSet returns a FontSet backed entirely by the bundled Go
// fonts. It never fails.
func DefaultFontSet() *FontSet {
	return &FontSet{
		caption:  mustParse(goitalic.TTF),
		title:    mustParse(gobold.TTF),
		subtitle: mustParse(goregular.TTF),
	}
}

// CaptionFace returns a caption face at the given pixel size.
func (f *FontSet) CaptionFace(size float64) font.Face {
	return newFace(f.caption, size)
}

// TitleFace returns a title face at the given pixel size.
func (f *FontSet) TitleFace(size float64) font.Face {
	return newFace(f.title, size)
}

// SubtitleFace returns a subtitle face at the given pixel size.
func (f *FontSet) SubtitleFace(size float64) font.Face {
	return newFace(f.subtitle, size)
}

func newFace(fnt *truetype.Font, size float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{Size: size})
}

func mustParse(ttf []byte) *truetype.Font {
	fnt, err := truetype.Parse(ttf)
	if err != nil {
		// The bundled Go fonts always parse.
		panic(fmt.Sprintf("parse bundled font: %v", err))
	}
	return fnt
}
