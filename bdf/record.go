// Package bdf parses fonts in the Bitmap Distribution Format: a
// line-oriented text grammar of nested START<KIND>…END<KIND> records
// holding typed properties and hex-encoded glyph bitmaps.
package bdf

import (
	"fmt"
	"io"
	"strings"
)

const (
	startTag = "START"
	endTag   = "END"
	bbxKey   = "BBX"
)

// Record is one nested block of a BDF document.
type Record struct {
	Kind     string   // FONT, PROPERTIES, CHAR, ...
	Args     []string // raw tokens after the opening tag
	Items    map[string]Item
	Children []*Record
}

// ParseRecord reads one complete record from r. If expectedKind is
// non-empty the record must be of that kind. A record is either parsed
// fully or not at all; no partial Record is ever returned.
func ParseRecord(r io.Reader, expectedKind string) (*Record, error) {
	return parseRecord(newLineReader(r), expectedKind, "")
}

func parseRecord(rd *lineReader, expectedKind, firstLine string) (*Record, error) {
	line := firstLine
	if line == "" {
		var err error
		if line, err = rd.nextLine(); err != nil {
			return nil, err
		}
	}

	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], startTag) {
		return nil, fmt.Errorf("%w: expected %s%s, found %q", ErrUnexpectedRecordKind, startTag, expectedKind, line)
	}
	kind := fields[0][len(startTag):]
	if expectedKind != "" && kind != expectedKind {
		return nil, fmt.Errorf("%w: expected %s%s, found %q", ErrUnexpectedRecordKind, startTag, expectedKind, line)
	}

	rec := &Record{
		Kind:  kind,
		Args:  fields[1:],
		Items: make(map[string]Item),
	}

	for {
		line, err := rd.nextLine()
		if err != nil {
			return nil, err
		}

		switch {
		case line == "":
			return nil, fmt.Errorf("%w: %s%s never closed before EOF", ErrUnterminatedRecord, startTag, rec.Kind)

		case strings.HasPrefix(line, endTag):
			if line != endTag+rec.Kind {
				return nil, fmt.Errorf("%w: expected %s%s but got %q", ErrMismatchedEndTag, endTag, rec.Kind, line)
			}
			return rec, nil

		case strings.HasPrefix(line, startTag):
			child, err := parseRecord(rd, "", line)
			if err != nil {
				return nil, err
			}
			rec.Children = append(rec.Children, child)

		case strings.HasPrefix(line, bitmapTag):
			w, h, err := rec.charBox()
			if err != nil {
				return nil, err
			}
			bm, err := parseBitmap(rd, w, h, line)
			if err != nil {
				return nil, err
			}
			if err := rec.setItem(bitmapTag, bm); err != nil {
				return nil, err
			}

		default:
			key, rest := line, ""
			if i := strings.IndexAny(line, " \t"); i >= 0 {
				key, rest = line[:i], line[i+1:]
			}
			prop, err := parseProperty(rest)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			if err := rec.setItem(key, prop); err != nil {
				return nil, err
			}
		}
	}
}

func (r *Record) setItem(key string, it Item) error {
	if _, dup := r.Items[key]; dup {
		return fmt.Errorf("%w: repeated %s in %s", ErrDuplicateKey, key, r.Kind)
	}
	r.Items[key] = it
	return nil
}

// charBox extracts the declared pixel width and height from the
// record's BBX property, which must precede any BITMAP line.
func (r *Record) charBox() (w, h int, err error) {
	prop, ok := r.Items[bbxKey].(Property)
	if !ok {
		return 0, 0, fmt.Errorf("%w (in %s)", ErrMissingBBX, r.Kind)
	}
	if len(prop) < 2 {
		return 0, 0, fmt.Errorf("%w: BBX needs at least width and height", ErrMalformedValue)
	}
	wv, wok := prop[0].(Int)
	hv, hok := prop[1].(Int)
	if !wok || !hok || wv < 0 || hv < 0 {
		return 0, 0, fmt.Errorf("%w: BBX width/height must be non-negative integers", ErrMalformedValue)
	}
	return int(wv), int(hv), nil
}
