package bdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is one scalar of a property tuple: either an Int or a Str.
// Consumers type-switch on the concrete type; there is no implicit
// coercion between the two.
type Value interface {
	isValue()
}

// Int is an integer property value.
type Int int64

// Str is a string property value.
type Str string

func (Int) isValue() {}
func (Str) isValue() {}

// Property is the ordered tuple of values following a property key,
// e.g. the four integers of a BBX line.
type Property []Value

// Item is one entry of a record: a Property tuple, or the decoded
// Bitmap stored under the BITMAP key.
type Item interface {
	isItem()
}

func (Property) isItem() {}

func (*Bitmap) isItem() {}

// parseProperty tokenizes the remainder of a property line, left to
// right. At each position the alternatives are, in priority order: an
// optionally negated decimal integer, a double-quoted string (quotes
// stripped, no escapes), or the whole remainder as one bare token.
func parseProperty(text string) (Property, error) {
	rest := strings.TrimSpace(text)
	if rest == "" {
		return nil, fmt.Errorf("%w: expected int or string value, got %q", ErrMalformedValue, text)
	}

	var values Property
	for rest != "" {
		if n, ok := scanInt(rest); ok {
			v, err := strconv.ParseInt(rest[:n], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedValue, rest[:n])
			}
			values = append(values, Int(v))
			rest = strings.TrimLeft(rest[n:], " \t")
			continue
		}
		if rest[0] == '"' {
			if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
				values = append(values, Str(rest[1:1+end]))
				rest = strings.TrimLeft(rest[end+2:], " \t")
				continue
			}
		}
		// Neither an int nor a quoted string: the remainder is a
		// single unquoted token.
		values = append(values, Str(rest))
		rest = ""
	}
	return values, nil
}

// scanInt reports the length of a leading decimal integer in s, if any.
func scanInt(s string) (int, bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	return i, true
}
