package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// jpegQuality is the encode quality for all output. The compositions are
// final artifacts, so they keep the maximum the codec offers.
const jpegQuality = 100

// newSurface creates a drawing surface of the given pixel dimensions.
// Invalid dimensions are a *SurfaceError.
func newSurface(w, h int) (*gg.Context, error) {
	if w <= 0 || h <= 0 {
		return nil, &SurfaceError{Width: w, Height: h}
	}
	return gg.NewContext(w, h), nil
}

// encodeDataURL encodes img as a maximum-quality JPEG data URL.
func encodeDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
