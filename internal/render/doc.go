// Package render composes photographs into decorative polaroid images and
// multi-photo album pages.
//
// The package has two entry points:
//   - PolaroidRenderer draws a single photo with a frame and caption band.
//   - AlbumRenderer arranges nine captioned polaroids on an A4-proportioned
//     page with a two-line header, per-item tilt, and soft drop shadows.
//
// Both return the finished composition as a JPEG data URL
// ("data:image/jpeg;base64,..."), encoded at maximum quality.
//
// # Image Sources
//
// Photos are referenced by source string: an http(s) URL or a base64 data
// URL. Loader resolves either form to a decoded image.Image. Decoded images
// are owned by the render call that requested them; nothing is cached or
// reused across calls.
//
// # Cover Placement
//
// Photos are placed with "cover" semantics: the source is scaled to fully
// fill its container while preserving aspect ratio, and the overflow is
// center-cropped. The container is never letterboxed and the photo never
// renders outside its bounds.
//
// # Fonts
//
// Text is drawn with faces from a FontSet, an explicit handle constructed
// before rendering. DefaultFontSet falls back to the bundled Go fonts, so a
// missing decorative font degrades rather than fails.
//
// # Concurrency
//
// Renderers and Loader hold no mutable shared state and are safe for
// concurrent use, with one exception: AlbumRenderer's Rand field, when set,
// must not be shared across concurrent renders.
//
// # Error Handling
//
// Rendering is fail-fast. A source that cannot be fetched or decoded
// surfaces as a *LoadError carrying a truncated source identifier; invalid
// surface dimensions surface as a *SurfaceError. There are no retries and
// no partial output.
package render
