package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// SourceLoader resolves image source strings to decoded images. It is
// implemented by Loader and by test stubs.
type SourceLoader interface {
	// Load resolves a single source.
	Load(ctx context.Context, source string) (image.Image, error)

	// LoadAll resolves every source concurrently. The result slice is
	// index-aligned with sources regardless of completion order. Any
	// single failure fails the whole call.
	LoadAll(ctx context.Context, sources []string) ([]image.Image, error)
}

// Loader fetches and decodes image sources.
//
// Two source forms are accepted:
//   - http:// or https:// URLs, fetched with a timeout-configured client
//   - data:image/...;base64,... data URLs, decoded in-process
//
// Loader is stateless apart from its HTTP client and is safe for
// concurrent use. Decoded images are not cached; every Load decodes anew.
//
// Failures are reported as *LoadError with the source identifier truncated
// to keep messages bounded when sources are large embedded data URLs.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with a 30 second HTTP timeout.
func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Load resolves one source string to a decoded image.
func (l *Loader) Load(ctx context.Context, source string) (image.Image, error) {
	switch {
	case strings.HasPrefix(source, "data:"):
		return l.loadDataURL(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.loadRemote(ctx, source)
	default:
		return nil, newLoadError(source, errors.New("unsupported source form: want http(s) URL or data URL"))
	}
}

// LoadAll resolves all sources concurrently, preserving index order.
//
// Every load is started together; results are re-associated with their
// source by position, not by completion order. The first failure cancels
// the remaining loads and is returned. This is all-or-nothing: on error no
// partial result is exposed.
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]image.Image, error) {
	images := make([]image.Image, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		i, source := i, source // capture
		g.Go(func() error {
			img, err := l.Load(ctx, source)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

func (l *Loader) loadDataURL(source string) (image.Image, error) {
	comma := strings.Index(source, ",")
	if comma < 0 || !strings.Contains(source[:comma], ";base64") {
		return nil, newLoadError(source, errors.New("malformed data URL: expected \"data:<mime>;base64,<payload>\""))
	}

	raw, err := base64.StdEncoding.DecodeString(source[comma+1:])
	if err != nil {
		return nil, newLoadError(source, fmt.Errorf("decode base64 payload: %w", err))
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, newLoadError(source, fmt.Errorf("decode image: %w", err))
	}
	return img, nil
}

func (l *Loader) loadRemote(ctx context.Context, source string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, newLoadError(source, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, newLoadError(source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newLoadError(source, fmt.Errorf("unexpected status %s", resp.Status))
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, newLoadError(source, fmt.Errorf("decode image: %w", err))
	}
	return img, nil
}
