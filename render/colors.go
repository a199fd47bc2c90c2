package render

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Palette indices of a proof sheet.
const (
	paperIdx = iota
	inkIdx
	missingIdx
	gridIdx
)

var (
	defaultInk   = color.RGBA{0x20, 0x20, 0x28, 0xff}
	defaultPaper = color.RGBA{0xfa, 0xfa, 0xf2, 0xff}
)

func rgbMix(c1, c2 color.Color, t float64) color.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	if (clr1.R == clr1.G && clr1.G == clr1.B) || (clr2.R == clr2.G && clr2.G == clr2.B) {
		return clr1.BlendRgb(clr2, t).Clamped()
	}
	return clr1.BlendLab(clr2, t).Clamped()
}

// sheetPalette derives the sheet colors from an ink/paper pair: paper,
// ink, a washed-out paper for cells without a glyph, and a faint grid.
func sheetPalette(ink, paper color.Color) color.Palette {
	return color.Palette{
		paper,
		ink,
		rgbMix(paper, ink, 0.08),
		rgbMix(paper, ink, 0.25),
	}
}
