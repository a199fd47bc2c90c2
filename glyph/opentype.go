package glyph

import (
	"errors"
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrNotMonospace is returned for outline fonts without a fixed pitch.
var ErrNotMonospace = errors.New("glyph: font is not monospace")

// maxSizeIters bounds the advance-matching search in NewOpenType.
const maxSizeIters = 10

// OpenType renders glyph cells from a vector outline font. It answers
// the same queries as a parsed bitmap font, so the two are
// interchangeable for header generation.
type OpenType struct {
	face xfont.Face
	sf   *sfnt.Font
	buf  sfnt.Buffer

	bbox                              BBox
	family, weight, psname, copyright string
}

// NewOpenType loads a TTF/OTF font and scales it so that the horizontal
// advance of 'M' is (roughly) widthPx pixels. dpi only affects hinting.
// Proportional fonts are rejected.
func NewOpenType(src []byte, widthPx, dpi int) (*OpenType, error) {
	sf, err := opentype.Parse(src)
	if err != nil {
		return nil, err
	}

	f := &OpenType{sf: sf}
	post := sf.PostTable()
	if post == nil || !post.IsFixedPitch {
		return nil, ErrNotMonospace
	}

	// Iteratively adjust the point size until the advance of 'M'
	// matches the requested cell width.
	size := float64(widthPx)
	width := widthPx
	for i := 0; i < maxSizeIters; i++ {
		f.face, err = opentype.NewFace(sf, &opentype.FaceOptions{
			Size:    size,
			DPI:     float64(dpi),
			Hinting: xfont.HintingFull,
		})
		if err != nil {
			return nil, err
		}
		adv, ok := f.face.GlyphAdvance('M')
		if !ok || adv.Ceil() <= 0 {
			return nil, fmt.Errorf("glyph: cannot measure advance of %q", 'M')
		}
		width = adv.Ceil()
		if width == widthPx {
			break
		}
		size *= float64(widthPx) / float64(width)
	}

	m := f.face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	f.bbox = BBox{W: width, H: ascent + descent, OX: 0, OY: -descent}

	f.family = f.name(sfnt.NameIDFamily)
	f.weight = f.name(sfnt.NameIDSubfamily)
	f.psname = f.name(sfnt.NameIDPostScript)
	f.copyright = f.name(sfnt.NameIDCopyright)
	return f, nil
}

func (f *OpenType) name(id sfnt.NameID) string {
	s, err := f.sf.Name(&f.buf, id)
	if err != nil {
		return ""
	}
	return s
}

func (f *OpenType) BBox() BBox { return f.bbox }

func (f *OpenType) Family() string { return f.family }

func (f *OpenType) Weight() string { return f.weight }

func (f *OpenType) LogicalName() string { return f.psname }

func (f *OpenType) Copyright() string { return f.copyright }

// RenderChar rasterizes the glyph for code into a packed 1-bpp cell
// buffer, clipping anything the outline draws outside the cell.
// Returns (nil, nil) if the font has no glyph for the code.
func (f *OpenType) RenderChar(code int) ([]byte, error) {
	r := rune(code)
	idx, err := f.sf.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return nil, nil
	}

	// Pen at the baseline; the face positions the mask from there.
	dot := fixed.P(f.bbox.OX, f.bbox.H+f.bbox.OY)
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok {
		return nil, nil
	}

	stride := RowWidth(f.bbox.W) / 8
	data := make([]byte, stride*f.bbox.H)
	clipped := dr.Intersect(image.Rect(0, 0, f.bbox.W, f.bbox.H))
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			mx := maskp.X + (x - dr.Min.X)
			my := maskp.Y + (y - dr.Min.Y)
			if _, _, _, a := mask.At(mx, my).RGBA(); a >= 0x8000 {
				data[y*stride+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return data, nil
}
