package bdf

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/32bitkid/bitreader"

	"github.com/weegfx/fontconv/glyph"
)

const bitmapTag = "BITMAP"

// Bitmap is one glyph's pixel data, exactly as stored in the file:
// row-major, top-to-bottom, each row padded on the right to a whole
// number of bytes. The padding bits are not masked here; interpreting
// them is the consumer's business.
type Bitmap struct {
	Width  int // declared width, in pixels
	Height int // declared height, in rows
	Data   []byte
}

// Stride returns the number of bytes per stored row.
func (b *Bitmap) Stride() int {
	return glyph.RowWidth(b.Width) / 8
}

// parseBitmap consumes the hex rows of a BITMAP block. firstLine (or
// the next fetched line) must open the block. Exactly
// RowWidth(width)/8 * height bytes are decoded; trailing bytes on the
// last contributing line are ignored.
func parseBitmap(rd *lineReader, width, height int, firstLine string) (*Bitmap, error) {
	line := firstLine
	if line == "" {
		var err error
		if line, err = rd.nextLine(); err != nil {
			return nil, err
		}
	}
	if !strings.HasPrefix(line, bitmapTag) {
		return nil, fmt.Errorf("%w, found %q", ErrExpectedBitmap, line)
	}

	bm := &Bitmap{Width: width, Height: height}
	need := glyph.RowWidth(width) / 8 * height
	bm.Data = make([]byte, 0, need)
	for len(bm.Data) < need {
		line, err := rd.nextLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, fmt.Errorf("%w: stream ended %d bytes short", ErrMalformedBitmapRow, need-len(bm.Data))
		}
		digits := stripSpace(line)
		if len(digits)%2 != 0 {
			return nil, fmt.Errorf("%w: odd number of hex digits in %q", ErrMalformedBitmapRow, line)
		}
		row, err := hex.DecodeString(digits)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedBitmapRow, line, err)
		}
		bm.Data = append(bm.Data, row...)
	}
	bm.Data = bm.Data[:need]
	return bm, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

// String renders the bitmap as blocky ASCII art, handy for debugging
// font extraction.
func (b *Bitmap) String() string {
	var sb strings.Builder
	stride := b.Stride()
	for y := 0; y < b.Height; y++ {
		br := bitreader.NewReader(bytes.NewReader(b.Data[y*stride : (y+1)*stride]))
		for x := 0; x < b.Width; x++ {
			set, err := br.Read1()
			if err != nil {
				break
			}
			if set {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
