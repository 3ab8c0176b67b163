// Package pipeline provides the chart pipeline shared by the CLI and the
// HTTP server.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Layout: validate the options and dataset and build a [chart.Chart]
//  2. Render: provision one canvas per requested format, draw the chart on
//     it and encode the result
//
// Rendered artifacts are cached under a key derived from the content hash
// of the chart options and dataset, so repeated requests for the same chart
// skip rendering.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Data:    data,
//	    Formats: []render.Format{render.FormatSVG, render.FormatPNG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[render.FormatSVG]
//
// Run the layout stage alone:
//
//	c, err := runner.Build(ctx, opts)
//	bars := c.Bars()
//
// [chart.Chart]: github.com/matzehuels/barchart/pkg/chart.Chart
package pipeline

import (
	"time"

	"github.com/matzehuels/barchart/pkg/cache"
	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 600.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 450.0

	// DefaultSeed fixes generated colors so cached artifacts are
	// reproducible.
	DefaultSeed = uint64(42)
)

// DefaultFormats is used when no output format is requested.
var DefaultFormats = []render.Format{render.FormatSVG}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Config  chart.Config    `json:"config"`
	Data    chart.Dataset   `json:"data"`
	Formats []render.Format `json:"formats,omitempty"`

	// Refresh skips cache reads; fresh artifacts are still written.
	Refresh bool `json:"refresh,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Chart is the constructed chart.
	Chart *chart.Chart

	// ChartHash is the content hash of the options and dataset.
	ChartHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[render.Format][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	Bytes      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	// Hits lists the formats served from the cache.
	Hits []render.Format

	// RenderHit is true when every artifact came from the cache.
	RenderHit bool
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults normalizes the requested formats and fills unset
// canvas dimensions, seed and formats. It is idempotent.
//
// Only a zero width or height is replaced; negative or non-finite sizes are
// left for chart construction to reject. The dataset is not checked here.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	formats := make([]render.Format, 0, len(o.Formats))
	for _, f := range o.Formats {
		parsed, err := render.ParseFormat(string(f))
		if err != nil {
			return err
		}
		if !containsFormat(formats, parsed) {
			formats = append(formats, parsed)
		}
	}
	o.Formats = formats

	if o.Config.Width == 0 {
		o.Config.Width = DefaultWidth
	}
	if o.Config.Height == 0 {
		o.Config.Height = DefaultHeight
	}
	if o.Config.Seed == 0 {
		o.Config.Seed = DefaultSeed
	}
	return nil
}

// ChartHash returns the content hash of the chart config and dataset.
// Call it after [Options.ValidateAndSetDefaults] so defaults are part of
// the hash.
func (o *Options) ChartHash() (string, error) {
	return cache.HashJSON(struct {
		Config chart.Config  `json:"config"`
		Data   chart.Dataset `json:"data"`
	}{o.Config, o.Data})
}

func containsFormat(formats []render.Format, f render.Format) bool {
	for _, x := range formats {
		if x == f {
			return true
		}
	}
	return false
}
