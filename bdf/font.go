package bdf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/weegfx/fontconv/glyph"
)

const (
	fontKind       = "FONT"
	propertiesKind = "PROPERTIES"
	charKind       = "CHAR"

	fontBBoxKey = "FONTBOUNDINGBOX"
	encodingKey = "ENCODING"
	familyKey   = "FAMILY_NAME"
	weightKey   = "WEIGHT_NAME"
	fontNameKey = "FONT"
	crKey       = "COPYRIGHT"
)

// Font is a validated monospace view over a parsed FONT record. It is
// immutable once built and keeps only what it needs to answer
// RenderChar queries.
type Font struct {
	bbox glyph.BBox

	family, weight, logicalName, copyright string

	chars map[int]*Record
}

// ParseFont parses a whole BDF stream and validates the top-level FONT
// record.
func ParseFont(r io.Reader) (*Font, error) {
	rec, err := ParseRecord(r, fontKind)
	if err != nil {
		return nil, err
	}
	return NewFont(rec)
}

// NewFont builds a Font from a parsed top-level record. The record must
// be of kind FONT, its first child must be the PROPERTIES block, and it
// must declare a FONTBOUNDINGBOX. When two CHAR children share an
// ENCODING the later one wins, as the format's tooling traditionally
// allows.
func NewFont(root *Record) (*Font, error) {
	if root.Kind != fontKind {
		return nil, fmt.Errorf("%w, got %s", ErrNotAFontRecord, root.Kind)
	}
	if len(root.Children) == 0 || root.Children[0].Kind != propertiesKind {
		return nil, fmt.Errorf("%w as the first child of %s", ErrMissingProperties, fontKind)
	}
	props := root.Children[0]

	bbox, err := fontBBox(root)
	if err != nil {
		return nil, err
	}

	f := &Font{
		bbox:        bbox,
		family:      stringItem(props, familyKey),
		weight:      stringItem(props, weightKey),
		logicalName: stringItem(root, fontNameKey),
		copyright:   stringItem(props, crKey),
		chars:       make(map[int]*Record),
	}

	for _, child := range root.Children {
		if child.Kind != charKind {
			continue
		}
		prop, _ := child.Items[encodingKey].(Property)
		if len(prop) == 0 {
			return nil, fmt.Errorf("%w: CHAR %v", ErrMissingEncoding, child.Args)
		}
		code, ok := prop[0].(Int)
		if !ok {
			return nil, fmt.Errorf("%w: CHAR %v: ENCODING is not an integer", ErrMissingEncoding, child.Args)
		}
		f.chars[int(code)] = child
	}
	return f, nil
}

func fontBBox(root *Record) (glyph.BBox, error) {
	prop, ok := root.Items[fontBBoxKey].(Property)
	if !ok {
		return glyph.BBox{}, ErrMissingBoundingBox
	}
	if len(prop) != 4 {
		return glyph.BBox{}, fmt.Errorf("%w: %s must hold four integers", ErrMalformedValue, fontBBoxKey)
	}
	var vals [4]int
	for i, v := range prop {
		n, ok := v.(Int)
		if !ok {
			return glyph.BBox{}, fmt.Errorf("%w: %s must hold four integers", ErrMalformedValue, fontBBoxKey)
		}
		vals[i] = int(n)
	}
	return glyph.BBox{W: vals[0], H: vals[1], OX: vals[2], OY: vals[3]}, nil
}

// stringItem returns the first value of a property as a string, or ""
// when the property is absent.
func stringItem(rec *Record, key string) string {
	prop, _ := rec.Items[key].(Property)
	if len(prop) == 0 {
		return ""
	}
	switch v := prop[0].(type) {
	case Str:
		return string(v)
	case Int:
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}

// BBox returns the bounding box shared by every glyph of the font.
func (f *Font) BBox() glyph.BBox { return f.bbox }

// Family returns the font family name, or "" when unknown.
func (f *Font) Family() string { return f.family }

// Weight returns the font weight name, or "" when unknown.
func (f *Font) Weight() string { return f.weight }

// LogicalName returns the font's logical (XLFD) name, or "".
func (f *Font) LogicalName() string { return f.logicalName }

// Copyright returns the font's copyright notice, or "".
func (f *Font) Copyright() string { return f.copyright }

// RenderChar returns the packed row bytes of the glyph for code, or
// (nil, nil) when the font has no such glyph. The glyph's declared BBX
// must agree with the font bounding box; this is where non-monospace
// fonts are caught, one code at a time.
func (f *Font) RenderChar(code int) ([]byte, error) {
	rec, ok := f.chars[code]
	if !ok {
		return nil, nil
	}

	w, h, err := rec.charBox()
	if err != nil {
		return nil, fmt.Errorf("character %d: %w", code, err)
	}
	if w != f.bbox.W || h != f.bbox.H {
		return nil, fmt.Errorf("%w: character %d is %dx%d, font is %dx%d",
			ErrInconsistentGlyphBox, code, w, h, f.bbox.W, f.bbox.H)
	}

	bm, ok := rec.Items[bitmapTag].(*Bitmap)
	if !ok {
		return nil, fmt.Errorf("%w: character %d has no bitmap data", ErrExpectedBitmap, code)
	}
	return bm.Data, nil
}
