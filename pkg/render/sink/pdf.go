package sink

import (
	"context"

	"github.com/matzehuels/barchart/pkg/render"
)

// PDF is an SVG canvas whose encoded form is converted to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
type PDF struct {
	*SVG
}

// NewPDF returns an empty PDF canvas of the given size.
func NewPDF(id string, width, height float64) *PDF {
	return &PDF{SVG: NewSVG(id, width, height)}
}

func (p *PDF) Encode(ctx context.Context) ([]byte, error) {
	return render.ToPDF(ctx, p.SVG.Bytes())
}
