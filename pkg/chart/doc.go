// Package chart computes and draws single-series bar charts.
//
// # Overview
//
// A chart is built once from a [Config] and a [Dataset]. Construction
// validates the input, derives an immutable [Layout] (margins, axis extents,
// tick spacing, vertical scale) and resolves a [Style] (colors, fonts, line
// widths). Rendering then walks the layout and issues draw calls against a
// [Surface]:
//
//	c, err := chart.New(chart.Config{Width: 600, Height: 450, UseGuidelines: true}, data)
//	if err != nil {
//	    return err // errors.IsConfigError / errors.IsDataError
//	}
//	c.Render(surface)
//
// # Geometry
//
// Ten percent of the canvas is reserved as margin on every side, and label
// fonts are sized at three percent of the matching canvas dimension. The
// vertical axis ceiling is the dataset maximum rounded up to a multiple of
// ten. Each data point owns an equal horizontal slot; its bar is inset by a
// tenth of the slot on both sides and grows upward from the baseline.
//
// Tick labels and guidelines mark slot boundaries, so a chart with N points
// draws N+1 of each while drawing N bars and N category labels.
//
// # Draw order
//
// Render always emits, in order: the two axes, the guidelines (when
// enabled), then for every index the tick label, the category label and the
// bar. Rendering the same chart twice produces the same call sequence.
//
// # Colors
//
// Unset colors are filled from a pseudo-random source seeded by
// [Config.Seed]. The resolved colors are fixed at construction, so every
// render of a chart looks the same.
package chart
