// Package pkg provides the core libraries for barchart.
//
// # Overview
//
// Barchart turns a list of labeled values into a bar chart with axes,
// tick labels, category labels and optional guidelines. The pkg directory
// is organized into these areas:
//
//  1. [chart] - Layout geometry, style resolution and the draw sequence
//  2. [render] - Output formats, drawing surfaces and PDF conversion
//  3. [io] - Dataset import (JSON, TOML, CSV, XLSX) and TOML chart configs
//  4. [pipeline] - Orchestration (dataset → chart → artifacts) with caching
//  5. [cache] - File, redis and null artifact caches
//  6. [server] - HTTP rendering API
//
// # Architecture
//
// The typical data flow:
//
//	Dataset file / API request
//	         ↓
//	    [io] package (decode dataset and config)
//	         ↓
//	    [chart] package (layout + style)
//	         ↓
//	    [render/sink] package (SVG, PNG, PDF or JSON draw record)
//
// # Quick Start
//
// Render a chart to SVG:
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/barchart/pkg/io"
//	    "github.com/matzehuels/barchart/pkg/pipeline"
//	    "github.com/matzehuels/barchart/pkg/render"
//	)
//
//	data, err := io.Import("sales.csv")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(context.Background(), pipeline.Options{
//	    Data:    data,
//	    Formats: []render.Format{render.FormatSVG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := res.Artifacts[render.FormatSVG]
//
// # Error Handling
//
// Errors carry a code from package [errors]. Invalid canvas dimensions are
// INVALID_CONFIG and empty or non-finite datasets are INVALID_DATA; both
// are reported before anything is drawn.
//
// [chart]: github.com/matzehuels/barchart/pkg/chart
// [render]: github.com/matzehuels/barchart/pkg/render
// [io]: github.com/matzehuels/barchart/pkg/io
// [pipeline]: github.com/matzehuels/barchart/pkg/pipeline
// [cache]: github.com/matzehuels/barchart/pkg/cache
// [server]: github.com/matzehuels/barchart/pkg/server
// [errors]: github.com/matzehuels/barchart/pkg/errors
package pkg
