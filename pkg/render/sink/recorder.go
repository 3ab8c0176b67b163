package sink

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/matzehuels/barchart/pkg/chart"
)

// OpKind is the kind of a recorded draw call.
type OpKind string

const (
	OpLine OpKind = "line"
	OpRect OpKind = "rect"
	OpText OpKind = "text"
)

// Op is one recorded draw call. Lines carry two points, rects an origin
// and a size, text a single anchor point.
type Op struct {
	Kind      OpKind             `json:"op"`
	Stroke    string             `json:"stroke,omitempty"`
	Fill      string             `json:"fill,omitempty"`
	LineWidth float64            `json:"line_width,omitempty"`
	Points    []chart.Point      `json:"points"`
	Size      *chart.Size        `json:"size,omitempty"`
	Font      string             `json:"font,omitempty"`
	Align     chart.TextAlign    `json:"align,omitempty"`
	Baseline  chart.TextBaseline `json:"baseline,omitempty"`
	Text      string             `json:"text,omitempty"`
}

// Recorder is a canvas that keeps every draw call in order. Its encoded
// form is the JSON list of operations.
type Recorder struct {
	id     string
	width  float64
	height float64
	ops    []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(id string, width, height float64) *Recorder {
	return &Recorder{id: id, width: width, height: height}
}

func (r *Recorder) ID() string       { return r.id }
func (r *Recorder) Size() chart.Size { return chart.Size{Width: r.width, Height: r.height} }

// Ops returns a copy of the recorded operations.
func (r *Recorder) Ops() []Op { return slices.Clone(r.ops) }

// Count returns the number of recorded operations of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) DrawLine(stroke string, width float64, from, to chart.Point) {
	r.ops = append(r.ops, Op{Kind: OpLine, Stroke: stroke, LineWidth: width, Points: []chart.Point{from, to}})
}

func (r *Recorder) DrawRect(fill, stroke string, origin chart.Point, size chart.Size) {
	r.ops = append(r.ops, Op{Kind: OpRect, Fill: fill, Stroke: stroke, Points: []chart.Point{origin}, Size: &size})
}

func (r *Recorder) DrawText(font chart.Font, align chart.TextAlign, baseline chart.TextBaseline, fill, text string, x, y float64) {
	r.ops = append(r.ops, Op{
		Kind:     OpText,
		Fill:     fill,
		Points:   []chart.Point{{X: x, Y: y}},
		Font:     font.String(),
		Align:    align,
		Baseline: baseline,
		Text:     text,
	})
}

type recording struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Ops    []Op    `json:"ops"`
}

// MarshalJSON encodes the recorder as {"id", "width", "height", "ops"}.
func (r *Recorder) MarshalJSON() ([]byte, error) {
	ops := r.ops
	if ops == nil {
		ops = []Op{}
	}
	return json.Marshal(recording{ID: r.id, Width: r.width, Height: r.height, Ops: ops})
}

func (r *Recorder) Encode(context.Context) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
