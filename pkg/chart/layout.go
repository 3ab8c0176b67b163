package chart

import (
	"math"

	"github.com/matzehuels/barchart/pkg/errors"
)

const (
	// axisRatio is the percentage of each canvas dimension reserved as
	// margin on either side. It also sets the bar inset (a tenth of a slot)
	// and the label offsets (a tenth of a margin).
	axisRatio = 10.0

	// fontRatio is the label font size as a percentage of the matching
	// canvas dimension.
	fontRatio = 3.0

	// boundRoundCoef is the step the vertical axis ceiling is rounded up to.
	boundRoundCoef = 10.0
)

// Layout is the pixel geometry of a chart. It is computed once by
// [NewLayout] and never mutated afterwards.
type Layout struct {
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`

	VerticalMargin   float64 `json:"vertical_margin"`
	HorizontalMargin float64 `json:"horizontal_margin"`

	// VerticalAxisHeight and HorizontalAxisWidth are the axis extents in
	// pixels: the canvas dimension minus both margins.
	VerticalAxisHeight  float64 `json:"vertical_axis_height"`
	HorizontalAxisWidth float64 `json:"horizontal_axis_width"`

	VerticalFontSize   float64 `json:"vertical_font_size"`
	HorizontalFontSize float64 `json:"horizontal_font_size"`

	ItemCount int `json:"item_count"`

	// Max is the largest value, floored at zero. Min is the smallest value,
	// capped at zero. Min is not used by the geometry.
	Max float64 `json:"max"`
	Min float64 `json:"min"`

	// VerticalUpperBound is Max rounded up to a multiple of ten.
	VerticalUpperBound float64 `json:"vertical_upper_bound"`

	// VerticalLabelFrequency is the value delta between consecutive tick
	// labels.
	VerticalLabelFrequency float64 `json:"vertical_label_frequency"`

	// HorizontalLabelFrequency is the pixel width of one data slot.
	HorizontalLabelFrequency float64 `json:"horizontal_label_frequency"`

	// VerticalFrequencyScaled is the pixel distance between consecutive
	// tick labels and horizontal guidelines.
	VerticalFrequencyScaled float64 `json:"vertical_frequency_scaled"`

	// TopY is the baseline the bars grow from; RightX is the right end of
	// the horizontal axis.
	TopY   float64 `json:"top_y"`
	RightX float64 `json:"right_x"`
}

// NewLayout validates cfg and data and computes the chart geometry.
//
// It returns an INVALID_CONFIG error when the canvas width or height is
// missing, non-positive or not finite, and an INVALID_DATA error when the
// dataset is empty or holds a non-finite value.
//
// When no value is above zero the vertical scale is degenerate: the upper
// bound and tick value delta are zero, ticks are spread evenly along the
// axis and every bar has zero height.
func NewLayout(cfg Config, data Dataset) (Layout, error) {
	if err := validateCanvas(cfg.Width, cfg.Height); err != nil {
		return Layout{}, err
	}
	if err := validateData(data); err != nil {
		return Layout{}, err
	}

	l := Layout{
		CanvasWidth:  cfg.Width,
		CanvasHeight: cfg.Height,
		ItemCount:    len(data),
	}

	l.VerticalMargin = cfg.Height / 100 * axisRatio
	l.HorizontalMargin = cfg.Width / 100 * axisRatio
	l.VerticalAxisHeight = cfg.Height - 2*l.VerticalMargin
	l.HorizontalAxisWidth = cfg.Width - 2*l.HorizontalMargin

	l.VerticalFontSize = cfg.Height / 100 * fontRatio
	l.HorizontalFontSize = cfg.Width / 100 * fontRatio

	for _, p := range data {
		l.Max = max(l.Max, p.Value)
		l.Min = min(l.Min, p.Value)
	}

	n := float64(l.ItemCount)
	l.VerticalUpperBound = math.Ceil(l.Max/boundRoundCoef) * boundRoundCoef
	l.VerticalLabelFrequency = l.VerticalUpperBound / n
	l.HorizontalLabelFrequency = l.HorizontalAxisWidth / n
	if l.VerticalUpperBound > 0 {
		l.VerticalFrequencyScaled = l.VerticalAxisHeight / l.VerticalUpperBound * l.VerticalLabelFrequency
	} else {
		l.VerticalFrequencyScaled = l.VerticalAxisHeight / n
	}

	l.TopY = cfg.Height - l.VerticalMargin
	l.RightX = cfg.Width - l.HorizontalMargin

	if err := l.checkScale(data); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// checkScale rejects datasets whose magnitudes overflow the vertical
// scale: finite inputs must yield finite geometry.
func (l Layout) checkScale(data Dataset) error {
	if !isFinite(l.VerticalUpperBound) || !isFinite(l.VerticalFrequencyScaled) {
		return errors.Data("maximum value %v is too large to scale", l.Max)
	}
	for i, p := range data {
		if !isFinite(l.barHeight(p.Value)) {
			return errors.Data("value %d (%q) is out of range for maximum %v", i, p.Label, l.Max)
		}
	}
	return nil
}

func validateCanvas(width, height float64) error {
	if !isPositive(width) && !isPositive(height) {
		return errors.Config("chart width and height are required, got %v x %v", width, height)
	}
	if !isPositive(width) {
		return errors.Config("chart width must be a positive number, got %v", width)
	}
	if !isPositive(height) {
		return errors.Config("chart height must be a positive number, got %v", height)
	}
	return nil
}

func validateData(data Dataset) error {
	if len(data) == 0 {
		return errors.Data("no data provided")
	}
	for i, p := range data {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return errors.Data("value %d (%q) is not a finite number", i, p.Label)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// TickCount is the number of tick labels, and of guideline pairs, along
// the axes: one per slot boundary.
func (l Layout) TickCount() int { return l.ItemCount + 1 }

// Axes returns the vertical and horizontal axis segments.
func (l Layout) Axes() (vertical, horizontal Line) {
	vertical = Line{
		From: Point{X: l.HorizontalMargin, Y: l.VerticalMargin},
		To:   Point{X: l.HorizontalMargin, Y: l.TopY},
	}
	horizontal = Line{
		From: Point{X: l.HorizontalMargin, Y: l.TopY},
		To:   Point{X: l.RightX, Y: l.TopY},
	}
	return vertical, horizontal
}

// Guidelines returns the guideline pair at boundary index i: a vertical
// line spanning the full axis height and a horizontal line spanning the
// full axis width.
func (l Layout) Guidelines(i int) (vertical, horizontal Line) {
	x := l.HorizontalMargin + float64(i)*l.HorizontalLabelFrequency
	y := l.VerticalMargin + float64(i)*l.VerticalFrequencyScaled
	vertical = Line{
		From: Point{X: x, Y: l.TopY},
		To:   Point{X: x, Y: l.VerticalMargin},
	}
	horizontal = Line{
		From: Point{X: l.HorizontalMargin, Y: y},
		To:   Point{X: l.HorizontalMargin + l.HorizontalAxisWidth, Y: y},
	}
	return vertical, horizontal
}

// TickValue is the axis value printed at boundary index i, counting down
// from the upper bound.
func (l Layout) TickValue(i int) float64 {
	return l.VerticalUpperBound - float64(i)*l.VerticalLabelFrequency
}

// VerticalLabel returns the tick label at boundary index i. It is
// right-aligned a tenth of a margin left of the vertical axis.
func (l Layout) VerticalLabel(i int) Label {
	return Label{
		Text: formatNumber(l.TickValue(i)),
		X:    l.HorizontalMargin - l.HorizontalMargin/axisRatio,
		Y:    l.VerticalMargin + float64(i)*l.VerticalFrequencyScaled,
	}
}

// HorizontalLabel returns the anchor of the category label of slot i: the
// slot midpoint, a tenth of a margin below the baseline.
func (l Layout) HorizontalLabel(i int) Point {
	return Point{
		X: l.HorizontalMargin + float64(i)*l.HorizontalLabelFrequency + l.HorizontalLabelFrequency/2,
		Y: l.TopY + l.VerticalMargin/axisRatio,
	}
}

// Bar returns the rectangle of the bar for slot i holding value. The
// height is negative: bars extend upward from the baseline.
func (l Layout) Bar(i int, value float64) Rect {
	inset := l.HorizontalLabelFrequency / axisRatio
	return Rect{
		Origin: Point{
			X: l.HorizontalMargin + float64(i)*l.HorizontalLabelFrequency + inset,
			Y: l.TopY,
		},
		Size: Size{
			Width:  l.HorizontalLabelFrequency - 2*inset,
			Height: l.barHeight(value),
		},
	}
}

func (l Layout) barHeight(value float64) float64 {
	if l.Max == 0 || value == 0 {
		return 0
	}
	return -l.VerticalAxisHeight * (value / l.Max)
}
