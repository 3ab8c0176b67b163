// Package sink provides the drawing surfaces a chart renders onto.
//
// # Overview
//
// Every surface implements [chart.Surface] and the [Canvas] interface on
// top of it, which adds an identifier, the canvas size and an encoder:
//
//   - [SVG]: vector output written as SVG elements
//   - [PNG]: raster output drawn with fogleman/gg and the embedded Go fonts
//   - [PDF]: SVG output converted with rsvg-convert
//   - [Recorder]: the ordered list of draw calls, encoded as JSON
//
// # Provisioning
//
// [Provision] looks up a container kind and creates a canvas of the
// requested size:
//
//	canvas, err := sink.Provision("png", 600, 450)
//	if err != nil {
//	    return err // INVALID_CONFIG
//	}
//	c.Render(canvas)
//	data, err := canvas.Encode(ctx)
//
// Container ids may carry an instance name ("svg:report"). Each canvas gets
// a unique id derived from its container id.
//
// # Colors
//
// Chart colors are CSS strings. SVG and the recorder pass them through;
// the PNG canvas parses them with [ParseColor], which accepts hex, rgb(),
// rgba() and named colors.
//
// [chart.Surface]: github.com/matzehuels/barchart/pkg/chart.Surface
package sink
