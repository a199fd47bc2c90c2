// Package render rasterizes a font's character range into a paletted
// proof sheet, for eyeballing a conversion before burning it into a
// firmware image.
package render

import (
	"bytes"
	"image"

	"github.com/32bitkid/bitreader"

	"github.com/weegfx/fontconv/glyph"
)

// sheetCols is the number of glyph cells per sheet row.
const sheetCols = 16

// Sheet draws codes first..last of src into a paletted image, one cell
// per code with a one pixel grid between cells. Cells for codes the
// font does not cover are filled with a washed-out paper color.
func Sheet(src glyph.Source, first, last int) (*image.Paletted, error) {
	bbox := src.BBox()
	count := last - first + 1
	if count < 1 {
		count = 1
	}
	cols := sheetCols
	if count < cols {
		cols = count
	}
	rows := (count + sheetCols - 1) / sheetCols

	cellW, cellH := bbox.W+1, bbox.H+1
	img := image.NewPaletted(
		image.Rect(0, 0, cols*cellW+1, rows*cellH+1),
		sheetPalette(defaultInk, defaultPaper),
	)
	for i := range img.Pix {
		img.Pix[i] = gridIdx
	}

	stride := glyph.RowWidth(bbox.W) / 8
	for code := first; code <= last; code++ {
		cell := code - first
		ox := (cell%sheetCols)*cellW + 1
		oy := (cell/sheetCols)*cellH + 1

		data, err := src.RenderChar(code)
		if err != nil {
			return nil, err
		}
		bg := uint8(paperIdx)
		if data == nil {
			bg = missingIdx
		}
		for y := 0; y < bbox.H; y++ {
			for x := 0; x < bbox.W; x++ {
				img.SetColorIndex(ox+x, oy+y, bg)
			}
		}
		if data == nil {
			continue
		}

		for y := 0; y < bbox.H; y++ {
			br := bitreader.NewReader(bytes.NewReader(data[y*stride : (y+1)*stride]))
			for x := 0; x < bbox.W; x++ {
				set, err := br.Read1()
				if err != nil {
					return nil, err
				}
				if set {
					img.SetColorIndex(ox+x, oy+y, inkIdx)
				}
			}
		}
	}
	return img, nil
}
