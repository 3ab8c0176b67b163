package chart

import (
	"fmt"
	"strconv"
)

// DataPoint is one labeled value of a dataset.
type DataPoint struct {
	Label string  `json:"label" toml:"label"`
	Value float64 `json:"value" toml:"value"`
}

// Dataset is an ordered list of data points. Order determines the
// horizontal position of each bar.
type Dataset []DataPoint

// Labels returns the labels in dataset order.
func (d Dataset) Labels() []string {
	labels := make([]string, len(d))
	for i, p := range d {
		labels[i] = p.Label
	}
	return labels
}

// Values returns the values in dataset order.
func (d Dataset) Values() []float64 {
	values := make([]float64, len(d))
	for i, p := range d {
		values[i] = p.Value
	}
	return values
}

// Clone returns a copy of d that shares no memory with it.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}

// Config holds the options a chart is constructed from. Width and Height
// are required; every other field is optional and falls back to a default
// or a generated color.
type Config struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`

	AxisColor string  `json:"axis_color,omitempty" toml:"axis_color,omitempty"`
	AxisWidth float64 `json:"axis_width,omitempty" toml:"axis_width,omitempty"`

	FontColor  string `json:"font_color,omitempty" toml:"font_color,omitempty"`
	FontStyle  string `json:"font_style,omitempty" toml:"font_style,omitempty"`
	FontWeight string `json:"font_weight,omitempty" toml:"font_weight,omitempty"`
	FontFamily string `json:"font_family,omitempty" toml:"font_family,omitempty"`

	BarColor       string `json:"bar_color,omitempty" toml:"bar_color,omitempty"`
	BarBorderColor string `json:"bar_border_color,omitempty" toml:"bar_border_color,omitempty"`

	UseGuidelines  bool    `json:"use_guidelines,omitempty" toml:"use_guidelines,omitempty"`
	GuidelineColor string  `json:"guideline_color,omitempty" toml:"guideline_color,omitempty"`
	GuidelineWidth float64 `json:"guideline_width,omitempty" toml:"guideline_width,omitempty"`

	// Seed fixes the source used for generated colors. Zero picks a fresh
	// seed per chart.
	Seed uint64 `json:"seed,omitempty" toml:"seed,omitempty"`
}

// Point is a position in surface pixel space (origin top-left, y down).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a rectangle extent. Height may be negative for shapes that grow
// upward from their origin.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an origin plus a size.
type Rect struct {
	Origin Point `json:"origin"`
	Size   Size  `json:"size"`
}

// Line is a segment between two points.
type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Label is a piece of text anchored at a point.
type Label struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Font describes a label font.
type Font struct {
	Style  string  `json:"style"`
	Weight string  `json:"weight"`
	Size   float64 `json:"size"`
	Family string  `json:"family"`
}

// String returns the CSS font shorthand, e.g. "normal 300 13.5px times".
func (f Font) String() string {
	return fmt.Sprintf("%s %s %spx %s", f.Style, f.Weight, formatNumber(f.Size), f.Family)
}

// TextAlign is the horizontal anchor of a text draw call.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// TextBaseline is the vertical anchor of a text draw call.
type TextBaseline string

const (
	BaselineAlphabetic TextBaseline = "alphabetic"
	BaselineTop        TextBaseline = "top"
	BaselineMiddle     TextBaseline = "middle"
)

// formatNumber renders v with the fewest digits that round-trip.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
