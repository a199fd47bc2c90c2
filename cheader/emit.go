// Package cheader writes a font out as a weegfx C header: one static
// byte array holding the glyph cells of a character range, followed by
// the WGFXmonoFont record describing it.
package cheader

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"

	"github.com/weegfx/fontconv/glyph"
)

// ErrInvalidRange is returned for character ranges outside 0..255 or
// with first > last.
var ErrInvalidRange = errors.New("cheader: invalid character range")

// maxCol is the column budget for the generated data lines.
const maxCol = 80

// Emit writes the glyph cells for codes first..last (both inclusive) of
// src to w. A code missing from the font is zero-filled and reported on
// warn rather than failing the conversion; embedded callers want a
// usable, if incomplete, font table. Nothing is written before the
// range is validated.
func Emit(w io.Writer, src glyph.Source, first, last int, warn io.Writer) error {
	if first > last || first < 0 || last > 255 {
		return fmt.Errorf("%w: %d..%d (note: non-ASCII chars are not yet supported)", ErrInvalidRange, first, last)
	}
	if warn == nil {
		warn = io.Discard
	}

	bbox := src.BBox()
	stride := glyph.Size(bbox)
	varName := fmt.Sprintf("FONT_%s_%s_%d_%d",
		normalize(strings.ToUpper(src.Family())),
		normalize(strings.ToUpper(src.Weight())),
		bbox.W, bbox.H)
	guard := varName + "_H"
	total := stride * (last - first + 1)

	fmt.Fprintf(w, "// Autogenerated by fontconv\n")
	fmt.Fprintf(w, "// Only include this file ONCE in the codebase (every translation unit gets its copy of the font data!)\n")
	fmt.Fprintf(w, "//\n")
	fmt.Fprintf(w, "// Font: %s %dx%d %s\n", orElse(src.Family(), "<unknown family>"), bbox.W, bbox.H, src.Weight())
	fmt.Fprintf(w, "//       %s\n", orElse(src.LogicalName(), "<unknown logical name>"))
	fmt.Fprintf(w, "//       %s\n", orElse(src.Copyright(), "<no copyright info>"))
	fmt.Fprintf(w, "// Character range: 0x%02X..0x%02X (both inclusive)\n", first, last)
	fmt.Fprintf(w, "#ifndef %s\n", guard)
	fmt.Fprintf(w, "#define %s\n\n", guard)
	fmt.Fprintf(w, "static const WGFX_U8 %s_DATA[%d] WGFX_RODATA = {\n", varName, total)

	empty := make([]byte, stride)
	for code := first; code <= last; code++ {
		data, err := src.RenderChar(code)
		if err != nil {
			return err
		}
		missing := ""
		if data == nil {
			fmt.Fprintf(warn, "character %d missing, zero-filling pixel data\n", code)
			data = empty
			missing = " (MISSING)"
		}

		fmt.Fprintf(w, "    // 0x%02X %s%s", code, charLabel(code), missing)
		col := maxCol
		for _, b := range data {
			lit := fmt.Sprintf("0x%02X, ", b)
			col += len(lit)
			if col >= maxCol {
				fmt.Fprint(w, "\n    ")
				col = 0
			}
			fmt.Fprint(w, lit)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "};\n\n")
	fmt.Fprintf(w, "static const WGFXmonoFont %s WGFX_RODATA = {\n", varName)
	fmt.Fprintf(w, "    %d, %d,\n", bbox.W, bbox.H)
	fmt.Fprintf(w, "    0x%02X, 0x%02X,\n", first, last)
	fmt.Fprintf(w, "    %s_DATA,\n", varName)
	fmt.Fprintf(w, "    %d, // = %d * %d\n", stride, glyph.RowWidth(bbox.W)/8, bbox.H)
	fmt.Fprintf(w, "};\n\n")
	_, err := fmt.Fprintf(w, "#endif // %s\n", guard)
	return err
}

// normalize maps every non-alphanumeric rune to an underscore. The
// result is unique per font/weight/size but not escape-safe for runes
// outside ASCII letters and digits.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
}

// charLabel names a single-byte code for a comment, decoding the high
// half through Latin-1 so e.g. 0xE9 reads as 'é'.
func charLabel(code int) string {
	r := rune(code)
	if code >= 0x80 {
		r = charmap.ISO8859_1.DecodeByte(byte(code))
	}
	return fmt.Sprintf("%q", r)
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
