package chart

import (
	"fmt"
	"math/rand/v2"
)

// Defaults for unset style options.
const (
	DefaultAxisWidth      = 0.75
	DefaultGuidelineWidth = 0.5
	DefaultFontStyle      = "normal"
	DefaultFontWeight     = "300"
	DefaultFontFamily     = "times"
)

// Style is the fully resolved appearance of a chart.
type Style struct {
	AxisColor string  `json:"axis_color"`
	AxisWidth float64 `json:"axis_width"`

	FontColor      string `json:"font_color"`
	VerticalFont   Font   `json:"vertical_font"`
	HorizontalFont Font   `json:"horizontal_font"`

	BarColor       string `json:"bar_color"`
	BarBorderColor string `json:"bar_border_color"`

	UseGuidelines  bool    `json:"use_guidelines"`
	GuidelineColor string  `json:"guideline_color,omitempty"`
	GuidelineWidth float64 `json:"guideline_width,omitempty"`
}

// NewRand returns the random source used for generated colors. A zero
// seed yields a source seeded from the runtime's entropy.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// RandomColor returns an opaque CSS color "rgb(r, g, b)" drawn from rng.
func RandomColor(rng *rand.Rand) string {
	r := rng.IntN(256)
	g := rng.IntN(256)
	b := rng.IntN(256)
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// ResolveColor returns value, or a color drawn from rng when value is
// empty.
func ResolveColor(value string, rng *rand.Rand) string {
	if value != "" {
		return value
	}
	return RandomColor(rng)
}

func resolveWidth(value, fallback float64) float64 {
	if value > 0 {
		return value
	}
	return fallback
}

func resolveString(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// ResolveStyle fills every unset option of cfg. Colors are drawn from rng
// in a fixed order (axis, font, bar, bar border, guideline) so a given seed
// always produces the same palette.
func ResolveStyle(cfg Config, l Layout, rng *rand.Rand) Style {
	s := Style{
		AxisColor: ResolveColor(cfg.AxisColor, rng),
		AxisWidth: resolveWidth(cfg.AxisWidth, DefaultAxisWidth),
	}

	base := Font{
		Style:  resolveString(cfg.FontStyle, DefaultFontStyle),
		Weight: resolveString(cfg.FontWeight, DefaultFontWeight),
		Family: resolveString(cfg.FontFamily, DefaultFontFamily),
	}
	s.VerticalFont = base
	s.VerticalFont.Size = l.VerticalFontSize
	s.HorizontalFont = base
	s.HorizontalFont.Size = l.HorizontalFontSize
	s.FontColor = ResolveColor(cfg.FontColor, rng)

	s.BarColor = ResolveColor(cfg.BarColor, rng)
	s.BarBorderColor = ResolveColor(cfg.BarBorderColor, rng)

	s.UseGuidelines = cfg.UseGuidelines
	if cfg.UseGuidelines {
		s.GuidelineColor = ResolveColor(cfg.GuidelineColor, rng)
		s.GuidelineWidth = resolveWidth(cfg.GuidelineWidth, DefaultGuidelineWidth)
	}
	return s
}
