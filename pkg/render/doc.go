// Package render holds the output formats a chart can be rendered to and
// the external SVG conversion used for PDF output.
//
// # Formats
//
// [Format] names an artifact format (svg, png, pdf, json). Each format maps
// to a surface container in the [sink] subpackage through
// [Format.Container]; json maps to the recording container.
//
// # Format Conversion
//
// [ToPDF] converts SVG bytes to PDF using the external rsvg-convert tool
// (from librsvg). PNG output is rasterized natively by the sink package and
// does not need it.
//
//	svg, _ := canvas.Bytes()
//	pdf, err := render.ToPDF(ctx, svg)
//
// [sink]: github.com/matzehuels/barchart/pkg/render/sink
package render
