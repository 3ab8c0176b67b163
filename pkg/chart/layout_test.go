package chart

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/barchart/pkg/errors"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func monthly() Dataset {
	return Dataset{
		{Label: "Jan", Value: 50},
		{Label: "Feb", Value: 120},
		{Label: "Mar", Value: 30},
		{Label: "Apr", Value: 200},
		{Label: "May", Value: 75},
	}
}

func TestNewLayoutScenario(t *testing.T) {
	l, err := NewLayout(Config{Width: 600, Height: 450}, monthly())
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"VerticalMargin", l.VerticalMargin, 45},
		{"HorizontalMargin", l.HorizontalMargin, 60},
		{"VerticalAxisHeight", l.VerticalAxisHeight, 360},
		{"HorizontalAxisWidth", l.HorizontalAxisWidth, 480},
		{"VerticalFontSize", l.VerticalFontSize, 13.5},
		{"HorizontalFontSize", l.HorizontalFontSize, 18},
		{"Max", l.Max, 200},
		{"Min", l.Min, 0},
		{"VerticalUpperBound", l.VerticalUpperBound, 200},
		{"VerticalLabelFrequency", l.VerticalLabelFrequency, 40},
		{"HorizontalLabelFrequency", l.HorizontalLabelFrequency, 96},
		{"VerticalFrequencyScaled", l.VerticalFrequencyScaled, 72},
		{"TopY", l.TopY, 405},
		{"RightX", l.RightX, 540},
	}
	for _, tt := range tests {
		if !approx(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if l.ItemCount != 5 {
		t.Errorf("ItemCount = %d, want 5", l.ItemCount)
	}
	if l.TickCount() != 6 {
		t.Errorf("TickCount() = %d, want 6", l.TickCount())
	}
}

func TestNewLayoutConfigErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"both missing", 0, 0},
		{"width missing", 0, 450},
		{"height missing", 600, 0},
		{"negative width", -600, 450},
		{"negative height", 600, -1},
		{"both negative", -1, -1},
		{"NaN width", math.NaN(), 450},
		{"infinite height", 600, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayout(Config{Width: tt.width, Height: tt.height}, monthly())
			if !errors.IsConfigError(err) {
				t.Errorf("NewLayout(%v x %v) error = %v, want INVALID_CONFIG", tt.width, tt.height, err)
			}
		})
	}
}

func TestNewLayoutConfigCheckedBeforeData(t *testing.T) {
	_, err := NewLayout(Config{}, nil)
	if !errors.IsConfigError(err) {
		t.Errorf("NewLayout(zero config, nil data) error = %v, want INVALID_CONFIG", err)
	}
}

func TestNewLayoutDataErrors(t *testing.T) {
	tests := []struct {
		name string
		data Dataset
	}{
		{"nil", nil},
		{"empty", Dataset{}},
		{"NaN value", Dataset{{Label: "a", Value: math.NaN()}}},
		{"infinite value", Dataset{{Label: "a", Value: 1}, {Label: "b", Value: math.Inf(-1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayout(Config{Width: 600, Height: 450}, tt.data)
			if !errors.IsDataError(err) {
				t.Errorf("NewLayout() error = %v, want INVALID_DATA", err)
			}
		})
	}
}

func TestUpperBoundProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7^0xdeadbeef))

	for run := 0; run < 500; run++ {
		n := 1 + rng.IntN(20)
		data := make(Dataset, n)
		maxValue := 0.0
		for i := range data {
			var v float64
			if run%2 == 0 {
				v = float64(rng.IntN(1000))
			} else {
				v = rng.Float64() * 1000
			}
			data[i] = DataPoint{Label: "x", Value: v}
			maxValue = max(maxValue, v)
		}

		l, err := NewLayout(Config{Width: 800, Height: 600}, data)
		if err != nil {
			t.Fatalf("NewLayout() error: %v", err)
		}

		ub := l.VerticalUpperBound
		if ub < maxValue {
			t.Errorf("run %d: upper bound %v < max %v", run, ub, maxValue)
		}
		if math.Mod(ub, 10) != 0 {
			t.Errorf("run %d: upper bound %v is not a multiple of 10", run, ub)
		}
		if maxValue > 0 && ub-10 >= maxValue {
			t.Errorf("run %d: upper bound %v is not tight for max %v", run, ub, maxValue)
		}
		if !approx(l.VerticalLabelFrequency*float64(n), ub) {
			t.Errorf("run %d: label frequency %v * %d != upper bound %v", run, l.VerticalLabelFrequency, n, ub)
		}
	}
}

func TestUpperBoundRounding(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{1, 10},
		{9.5, 10},
		{10, 10},
		{10.01, 20},
		{199, 200},
		{200, 200},
		{201, 210},
	}
	for _, tt := range tests {
		l, err := NewLayout(Config{Width: 100, Height: 100}, Dataset{{Label: "a", Value: tt.max}})
		if err != nil {
			t.Fatalf("NewLayout() error: %v", err)
		}
		if l.VerticalUpperBound != tt.want {
			t.Errorf("upper bound for max %v = %v, want %v", tt.max, l.VerticalUpperBound, tt.want)
		}
	}
}

func TestMaxFlooredAtZero(t *testing.T) {
	l, err := NewLayout(Config{Width: 600, Height: 450}, Dataset{
		{Label: "a", Value: -5},
		{Label: "b", Value: -20},
	})
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}
	if l.Max != 0 {
		t.Errorf("Max = %v, want 0", l.Max)
	}
	if l.Min != -20 {
		t.Errorf("Min = %v, want -20", l.Min)
	}
}

func TestZeroMaxScale(t *testing.T) {
	l, err := NewLayout(Config{Width: 600, Height: 450}, Dataset{
		{Label: "a", Value: 0},
		{Label: "b", Value: 0},
		{Label: "c", Value: -3},
	})
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}

	if l.VerticalUpperBound != 0 || l.VerticalLabelFrequency != 0 {
		t.Errorf("upper bound = %v, frequency = %v, want 0, 0", l.VerticalUpperBound, l.VerticalLabelFrequency)
	}
	if !approx(l.VerticalFrequencyScaled, 120) {
		t.Errorf("VerticalFrequencyScaled = %v, want 120 (axis height spread over 3 items)", l.VerticalFrequencyScaled)
	}
	for i := 0; i < l.TickCount(); i++ {
		if got := l.VerticalLabel(i).Text; got != "0" {
			t.Errorf("VerticalLabel(%d).Text = %q, want %q", i, got, "0")
		}
	}
	for i, v := range []float64{0, 0, -3} {
		if h := l.Bar(i, v).Size.Height; h != 0 || math.Signbit(h) {
			t.Errorf("Bar(%d).Height = %v, want 0", i, h)
		}
	}
}

func TestLayoutGeometry(t *testing.T) {
	l, err := NewLayout(Config{Width: 600, Height: 450}, monthly())
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}

	vertical, horizontal := l.Axes()
	if vertical != (Line{From: Point{60, 45}, To: Point{60, 405}}) {
		t.Errorf("vertical axis = %+v", vertical)
	}
	if horizontal != (Line{From: Point{60, 405}, To: Point{540, 405}}) {
		t.Errorf("horizontal axis = %+v", horizontal)
	}

	gv, gh := l.Guidelines(2)
	if !approx(gv.From.X, 252) || gv.From.Y != 405 || gv.To.Y != 45 {
		t.Errorf("Guidelines(2) vertical = %+v", gv)
	}
	if gh.From.X != 60 || !approx(gh.To.X, 540) || !approx(gh.From.Y, 189) {
		t.Errorf("Guidelines(2) horizontal = %+v", gh)
	}

	tick := l.VerticalLabel(1)
	if tick.Text != "160" || tick.X != 54 || !approx(tick.Y, 117) {
		t.Errorf("VerticalLabel(1) = %+v, want {160 54 117}", tick)
	}
	if last := l.VerticalLabel(5); last.Text != "0" || !approx(last.Y, 405) {
		t.Errorf("VerticalLabel(5) = %+v, want text 0 at the baseline", last)
	}

	at := l.HorizontalLabel(0)
	if !approx(at.X, 108) || !approx(at.Y, 409.5) {
		t.Errorf("HorizontalLabel(0) = %+v, want {108 409.5}", at)
	}

	bar := l.Bar(3, 200)
	if !approx(bar.Origin.X, 357.6) || bar.Origin.Y != 405 {
		t.Errorf("Bar(3).Origin = %+v, want {357.6 405}", bar.Origin)
	}
	if !approx(bar.Size.Width, 76.8) || !approx(bar.Size.Height, -360) {
		t.Errorf("Bar(3).Size = %+v, want {76.8 -360}", bar.Size)
	}
}

func TestTickLabelsUnevenDivision(t *testing.T) {
	l, err := NewLayout(Config{Width: 600, Height: 450}, Dataset{
		{Label: "a", Value: 35},
		{Label: "b", Value: 12},
		{Label: "c", Value: 7},
	})
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}
	if l.VerticalUpperBound != 40 {
		t.Fatalf("VerticalUpperBound = %v, want 40", l.VerticalUpperBound)
	}
	if got := l.VerticalLabel(0).Text; got != "40" {
		t.Errorf("VerticalLabel(0).Text = %q, want 40", got)
	}
	// Ticks are spaced by item count, not by a round step.
	if got := l.TickValue(1); !approx(got, 40-40.0/3) {
		t.Errorf("TickValue(1) = %v, want %v", got, 40-40.0/3)
	}
	if got := l.TickValue(3); !approx(got, 0) {
		t.Errorf("TickValue(3) = %v, want 0", got)
	}
}

func TestNewLayoutExtremeMagnitudes(t *testing.T) {
	finite := func(vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}

	tests := []struct {
		name string
		data Dataset
	}{
		{"max float", Dataset{{Label: "a", Value: math.MaxFloat64}, {Label: "b", Value: 1}}},
		{"huge values", Dataset{{Label: "a", Value: 1e307}, {Label: "b", Value: 9e306}}},
		{"huge negative", Dataset{{Label: "a", Value: 1}, {Label: "b", Value: -1e308}}},
		{"tiny max", Dataset{{Label: "a", Value: 5e-324}, {Label: "b", Value: -1e300}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Config{Width: 600, Height: 450, UseGuidelines: true}, tt.data)
			if err != nil {
				if !errors.IsDataError(err) {
					t.Fatalf("New() error = %v, want nil or INVALID_DATA", err)
				}
				return
			}

			var r recorder
			c.Render(&r)
			for i, call := range r.calls {
				if !finite(call.from.X, call.from.Y, call.to.X, call.to.Y, call.size.Width, call.size.Height) {
					t.Errorf("call %d (%s) carries a non-finite coordinate: %+v", i, call.kind, call)
				}
			}
		})
	}
}

func TestNewLayoutRejectsOverflowingBars(t *testing.T) {
	_, err := NewLayout(Config{Width: 600, Height: 450}, Dataset{
		{Label: "a", Value: 1},
		{Label: "b", Value: -1e308},
	})
	if !errors.IsDataError(err) {
		t.Errorf("NewLayout() error = %v, want INVALID_DATA", err)
	}
}

func TestBarHeightDividesFirst(t *testing.T) {
	l, err := NewLayout(Config{Width: 600, Height: 450}, Dataset{{Label: "a", Value: 1e306}})
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}
	if h := l.Bar(0, 1e306).Size.Height; !approx(h, -360) {
		t.Errorf("Bar(0).Height = %v, want -360", h)
	}
}
