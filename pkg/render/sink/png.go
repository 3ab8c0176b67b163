package sink

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/errors"
	"github.com/matzehuels/barchart/pkg/fonts"
)

// PNG is a raster canvas backed by a gg context. Colors are parsed with
// [ParseColor]; the first unparseable color or missing font is reported by
// Encode and the offending draw call is skipped.
type PNG struct {
	id     string
	width  float64
	height float64
	dc     *gg.Context
	colors map[string]color.Color
	faces  map[chart.Font]font.Face
	err    error
}

// NewPNG returns a transparent raster canvas. Fractional sizes are rounded
// up to whole pixels.
func NewPNG(id string, width, height float64) *PNG {
	return &PNG{
		id:     id,
		width:  width,
		height: height,
		dc:     gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height))),
		colors: make(map[string]color.Color),
		faces:  make(map[chart.Font]font.Face),
	}
}

func (p *PNG) ID() string       { return p.id }
func (p *PNG) Size() chart.Size { return chart.Size{Width: p.width, Height: p.height} }

// Image returns the underlying raster.
func (p *PNG) Image() image.Image { return p.dc.Image() }

func (p *PNG) DrawLine(stroke string, width float64, from, to chart.Point) {
	c, ok := p.color(stroke)
	if !ok {
		return
	}
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	p.dc.Stroke()
}

func (p *PNG) DrawRect(fill, stroke string, origin chart.Point, size chart.Size) {
	fc, ok := p.color(fill)
	if !ok {
		return
	}
	sc, ok := p.color(stroke)
	if !ok {
		return
	}
	x, y, w, h := normalizeRect(origin, size)

	p.dc.DrawRectangle(x, y, w, h)
	p.dc.SetColor(fc)
	p.dc.Fill()

	p.dc.DrawRectangle(x, y, w, h)
	p.dc.SetColor(sc)
	p.dc.SetLineWidth(1)
	p.dc.Stroke()
}

func (p *PNG) DrawText(f chart.Font, align chart.TextAlign, baseline chart.TextBaseline, fill, text string, x, y float64) {
	c, ok := p.color(fill)
	if !ok {
		return
	}
	face, ok := p.face(f)
	if !ok {
		return
	}
	p.dc.SetFontFace(face)
	p.dc.SetColor(c)
	p.dc.DrawStringAnchored(text, x, y, anchorX(align), anchorY(baseline))
}

func (p *PNG) Encode(context.Context) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	var buf bytes.Buffer
	if err := p.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (p *PNG) color(s string) (color.Color, bool) {
	if c, ok := p.colors[s]; ok {
		return c, true
	}
	c, err := ParseColor(s)
	if err != nil {
		p.fail(err)
		return nil, false
	}
	p.colors[s] = c
	return c, true
}

func (p *PNG) face(f chart.Font) (font.Face, bool) {
	if face, ok := p.faces[f]; ok {
		return face, true
	}
	face, err := fonts.Face(f.Style, f.Weight, f.Size)
	if err != nil {
		p.fail(errors.Wrap(errors.ErrCodeInternal, err, "load font %q", f.String()))
		return nil, false
	}
	p.faces[f] = face
	return face, true
}

func (p *PNG) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func anchorX(a chart.TextAlign) float64 {
	switch a {
	case chart.AlignCenter:
		return 0.5
	case chart.AlignRight:
		return 1
	}
	return 0
}

// anchorY maps a baseline onto gg's vertical anchor, where 0 draws on the
// alphabetic baseline and 1 hangs the text below y.
func anchorY(b chart.TextBaseline) float64 {
	switch b {
	case chart.BaselineTop:
		return 1
	case chart.BaselineMiddle:
		return 0.5
	}
	return 0
}
