package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/render"
	"github.com/matzehuels/barchart/pkg/render/sink"
)

// Render draws c on a freshly provisioned canvas for format f and returns
// the encoded bytes.
func Render(ctx context.Context, c *chart.Chart, f render.Format) ([]byte, error) {
	l := c.Layout()
	canvas, err := sink.Provision(f.Container(), l.CanvasWidth, l.CanvasHeight)
	if err != nil {
		return nil, err
	}
	c.Render(canvas)

	data, err := canvas.Encode(ctx)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}
	return data, nil
}
