// Package fontconv converts monospace fonts into C headers for the
// weegfx graphics library.
//
// Two source formats are supported: BDF bitmap fonts, parsed by the
// bdf package, and TTF/OTF outline fonts, rasterized by the glyph
// package. Both satisfy the same glyph.Source contract, so header
// generation does not care where the pixels came from.
package fontconv

import (
	"fmt"
	"image/png"
	"io"

	"github.com/weegfx/fontconv/bdf"
	"github.com/weegfx/fontconv/cheader"
	"github.com/weegfx/fontconv/glyph"
	"github.com/weegfx/fontconv/render"
)

// Options configures a single conversion.
type Options struct {
	// First and Last bound the character-code range, both inclusive.
	First, Last int

	// WidthPx and DPI only apply to outline fonts: the requested cell
	// width in pixels and the hinting resolution.
	WidthPx int
	DPI     int

	// Preview, when non-nil, receives a PNG proof sheet of the range.
	Preview io.Writer

	// Warnings receives missing-glyph diagnostics. nil discards them.
	Warnings io.Writer
}

// Loader turns a raw font stream into a queryable source.
type Loader func(r io.Reader, opts Options) (glyph.Source, error)

var loaders = map[glyph.Kind]Loader{
	glyph.KindBDF:      loadBDF,
	glyph.KindOpenType: loadOpenType,
}

func loadBDF(r io.Reader, _ Options) (glyph.Source, error) {
	return bdf.ParseFont(r)
}

func loadOpenType(r io.Reader, opts Options) (glyph.Source, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return glyph.NewOpenType(raw, opts.WidthPx, opts.DPI)
}

// Load reads a font of the given kind from r.
func Load(kind glyph.Kind, r io.Reader, opts Options) (glyph.Source, error) {
	loader, ok := loaders[kind]
	if !ok {
		return nil, fmt.Errorf("fontconv: unsupported font format: %s", kind)
	}
	return loader(r, opts)
}

// Convert loads a font from r and writes the C header for the
// requested range to w. Any failure aborts the conversion; whatever was
// already written must be discarded by the caller.
func Convert(kind glyph.Kind, r io.Reader, w io.Writer, opts Options) error {
	src, err := Load(kind, r, opts)
	if err != nil {
		return err
	}
	if err := cheader.Emit(w, src, opts.First, opts.Last, opts.Warnings); err != nil {
		return err
	}
	if opts.Preview != nil {
		sheet, err := render.Sheet(src, opts.First, opts.Last)
		if err != nil {
			return err
		}
		return png.Encode(opts.Preview, sheet)
	}
	return nil
}
