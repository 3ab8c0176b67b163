package sink

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/barchart/pkg/chart"
)

// SVG is a canvas that writes SVG elements. Rectangles with a negative
// height are flipped so the emitted rect always has a positive extent.
type SVG struct {
	id     string
	width  float64
	height float64
	body   bytes.Buffer
}

// NewSVG returns an empty SVG canvas of the given size.
func NewSVG(id string, width, height float64) *SVG {
	return &SVG{id: id, width: width, height: height}
}

func (s *SVG) ID() string       { return s.id }
func (s *SVG) Size() chart.Size { return chart.Size{Width: s.width, Height: s.height} }

func (s *SVG) DrawLine(stroke string, width float64, from, to chart.Point) {
	fmt.Fprintf(&s.body, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(from.X), num(from.Y), num(to.X), num(to.Y), escape(stroke), num(width))
}

func (s *SVG) DrawRect(fill, stroke string, origin chart.Point, size chart.Size) {
	x, y, w, h := normalizeRect(origin, size)
	fmt.Fprintf(&s.body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		num(x), num(y), num(w), num(h), escape(fill), escape(stroke))
}

func (s *SVG) DrawText(font chart.Font, align chart.TextAlign, baseline chart.TextBaseline, fill, text string, x, y float64) {
	fmt.Fprintf(&s.body, `  <text x="%s" y="%s" text-anchor="%s" dominant-baseline="%s" font-style="%s" font-weight="%s" font-size="%s" font-family="%s" fill="%s">%s</text>`+"\n",
		num(x), num(y), textAnchor(align), dominantBaseline(baseline),
		escape(font.Style), escape(font.Weight), num(font.Size), escape(font.Family), escape(fill), escape(text))
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" id="%s">`+"\n",
		num(s.width), num(s.height), num(s.width), num(s.height), escape(s.id))
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *SVG) Encode(context.Context) ([]byte, error) { return s.Bytes(), nil }

func normalizeRect(origin chart.Point, size chart.Size) (x, y, w, h float64) {
	x, y, w, h = origin.X, origin.Y, size.Width, size.Height
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}

func textAnchor(a chart.TextAlign) string {
	switch a {
	case chart.AlignCenter:
		return "middle"
	case chart.AlignRight:
		return "end"
	}
	return "start"
}

func dominantBaseline(b chart.TextBaseline) string {
	switch b {
	case chart.BaselineTop:
		return "text-before-edge"
	case chart.BaselineMiddle:
		return "central"
	}
	return "alphabetic"
}

// num formats v with at most two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
