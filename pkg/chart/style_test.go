package chart

import (
	"regexp"
	"testing"
)

var rgbPattern = regexp.MustCompile(`^rgb\((\d{1,3}), (\d{1,3}), (\d{1,3})\)$`)

func testLayout(t *testing.T) Layout {
	t.Helper()
	l, err := NewLayout(Config{Width: 600, Height: 450}, monthly())
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}
	return l
}

func TestRandomColor(t *testing.T) {
	rng := NewRand(99)
	for i := 0; i < 200; i++ {
		c := RandomColor(rng)
		m := rgbPattern.FindStringSubmatch(c)
		if m == nil {
			t.Fatalf("RandomColor() = %q, want rgb(r, g, b)", c)
		}
		for _, part := range m[1:] {
			if len(part) == 3 && part > "255" {
				t.Errorf("RandomColor() = %q, channel out of range", c)
			}
		}
	}
}

func TestResolveColor(t *testing.T) {
	rng := NewRand(1)
	if got := ResolveColor("#336699", rng); got != "#336699" {
		t.Errorf("ResolveColor(#336699) = %q", got)
	}
	if got := ResolveColor("", rng); !rgbPattern.MatchString(got) {
		t.Errorf("ResolveColor(\"\") = %q, want generated rgb color", got)
	}
}

func TestResolveStyleSeedStable(t *testing.T) {
	l := testLayout(t)
	cfg := Config{Width: 600, Height: 450, UseGuidelines: true}

	a := ResolveStyle(cfg, l, NewRand(42))
	b := ResolveStyle(cfg, l, NewRand(42))
	if a != b {
		t.Errorf("same seed produced different styles:\n%+v\n%+v", a, b)
	}

	c := ResolveStyle(cfg, l, NewRand(43))
	if a == c {
		t.Error("different seeds produced identical palettes")
	}
}

func TestResolveStyleKeepsSuppliedValues(t *testing.T) {
	l := testLayout(t)
	cfg := Config{
		AxisColor:      "black",
		AxisWidth:      2,
		FontColor:      "#222",
		FontStyle:      "italic",
		FontWeight:     "bold",
		FontFamily:     "serif",
		BarColor:       "steelblue",
		BarBorderColor: "navy",
		UseGuidelines:  true,
		GuidelineColor: "lightgray",
		GuidelineWidth: 1.5,
	}

	s := ResolveStyle(cfg, l, NewRand(1))

	tests := []struct {
		name, got, want string
	}{
		{"AxisColor", s.AxisColor, "black"},
		{"FontColor", s.FontColor, "#222"},
		{"BarColor", s.BarColor, "steelblue"},
		{"BarBorderColor", s.BarBorderColor, "navy"},
		{"GuidelineColor", s.GuidelineColor, "lightgray"},
		{"VerticalFont", s.VerticalFont.String(), "italic bold 13.5px serif"},
		{"HorizontalFont", s.HorizontalFont.String(), "italic bold 18px serif"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if s.AxisWidth != 2 || s.GuidelineWidth != 1.5 {
		t.Errorf("widths = %v, %v, want 2, 1.5", s.AxisWidth, s.GuidelineWidth)
	}
}

func TestResolveStyleDefaults(t *testing.T) {
	l := testLayout(t)

	s := ResolveStyle(Config{UseGuidelines: true, AxisWidth: -1}, l, NewRand(3))

	if s.AxisWidth != DefaultAxisWidth {
		t.Errorf("AxisWidth = %v, want %v", s.AxisWidth, DefaultAxisWidth)
	}
	if s.GuidelineWidth != DefaultGuidelineWidth {
		t.Errorf("GuidelineWidth = %v, want %v", s.GuidelineWidth, DefaultGuidelineWidth)
	}
	if got := s.VerticalFont.String(); got != "normal 300 13.5px times" {
		t.Errorf("VerticalFont = %q, want %q", got, "normal 300 13.5px times")
	}
	for name, c := range map[string]string{
		"AxisColor":      s.AxisColor,
		"FontColor":      s.FontColor,
		"BarColor":       s.BarColor,
		"BarBorderColor": s.BarBorderColor,
		"GuidelineColor": s.GuidelineColor,
	} {
		if !rgbPattern.MatchString(c) {
			t.Errorf("%s = %q, want generated rgb color", name, c)
		}
	}
}

func TestResolveStyleWithoutGuidelines(t *testing.T) {
	l := testLayout(t)

	with := ResolveStyle(Config{UseGuidelines: true}, l, NewRand(8))
	without := ResolveStyle(Config{GuidelineColor: "red", GuidelineWidth: 3}, l, NewRand(8))

	if without.GuidelineColor != "" || without.GuidelineWidth != 0 {
		t.Errorf("disabled guidelines resolved to %q/%v, want empty", without.GuidelineColor, without.GuidelineWidth)
	}
	// Guideline colors are drawn last, so the rest of the palette matches.
	if with.AxisColor != without.AxisColor || with.BarBorderColor != without.BarBorderColor {
		t.Errorf("palette changed with guidelines toggled: %+v vs %+v", with, without)
	}
}
