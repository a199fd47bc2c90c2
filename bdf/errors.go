package bdf

import "errors"

// Structural parse errors. All of them abort the whole conversion;
// the nesting of the format makes local recovery meaningless.
var (
	ErrUnexpectedRecordKind = errors.New("bdf: unexpected record kind")
	ErrUnterminatedRecord   = errors.New("bdf: unterminated record")
	ErrMismatchedEndTag     = errors.New("bdf: mismatched end tag")
	ErrDuplicateKey         = errors.New("bdf: duplicate key")
	ErrMalformedValue       = errors.New("bdf: malformed property value")
	ErrMalformedBitmapRow   = errors.New("bdf: malformed bitmap row")
	ErrExpectedBitmap       = errors.New("bdf: expected BITMAP")
	ErrMissingBBX           = errors.New("bdf: expected character BBX before BITMAP")
)

// Semantic validation errors, raised when a parsed document is not a
// usable monospace font.
var (
	ErrNotAFontRecord       = errors.New("bdf: expected a FONT record")
	ErrMissingProperties    = errors.New("bdf: expected a PROPERTIES record")
	ErrMissingBoundingBox   = errors.New("bdf: missing FONTBOUNDINGBOX")
	ErrMissingEncoding      = errors.New("bdf: CHAR record has no ENCODING")
	ErrInconsistentGlyphBox = errors.New("bdf: glyph box differs from the font bounding box")
)
