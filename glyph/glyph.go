// Package glyph defines the vocabulary shared by every font source:
// the monospace bounding box, the byte-aligned row stride rule, and the
// query contract that header generation runs against.
package glyph

import (
	"path/filepath"
	"strings"
)

// BBox is the pixel cell shared by every glyph of a monospace font:
// width and height in pixels, plus the origin offsets of the cell
// relative to the baseline.
type BBox struct {
	W, H, OX, OY int
}

// RowWidth returns w rounded up to the next multiple of 8. Bitmap rows
// are always stored as whole bytes, so a 5 pixel wide glyph still
// occupies 8 bits per row; the low padding bits are don't-care.
func RowWidth(w int) int {
	return (w + 7) / 8 * 8
}

// Size returns the number of bytes one glyph cell occupies: padded row
// bytes times rows.
func Size(b BBox) int {
	return RowWidth(b.W) / 8 * b.H
}

// Source is a font that can answer glyph queries for single-byte
// character codes.
//
// RenderChar returns the packed row-major bytes of the glyph cell for
// code: RowWidth(BBox().W)/8 bytes per row, top-to-bottom, with the
// leftmost pixel in the most significant bit. It returns (nil, nil)
// when the source has no glyph for the code.
type Source interface {
	BBox() BBox
	Family() string
	Weight() string
	LogicalName() string
	Copyright() string
	RenderChar(code int) ([]byte, error)
}

// Kind discriminates the supported on-disk font formats.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBDF
	KindOpenType
)

func (k Kind) String() string {
	switch k {
	case KindBDF:
		return "Kind(BDF)"
	case KindOpenType:
		return "Kind(OpenType)"
	}
	return "Kind(UNKNOWN)"
}

// DetectKind guesses the font format from the file extension.
func DetectKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bdf":
		return KindBDF
	case ".ttf", ".otf":
		return KindOpenType
	}
	return KindUnknown
}
