package sink

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/barchart/pkg/errors"
)

func TestProvision(t *testing.T) {
	tests := []struct {
		container string
		want      any
	}{
		{"svg", &SVG{}},
		{"png", &PNG{}},
		{"pdf", &PDF{}},
		{"record", &Recorder{}},
		{"svg:report", &SVG{}},
	}
	for _, tt := range tests {
		c, err := Provision(tt.container, 600, 450)
		if err != nil {
			t.Fatalf("Provision(%q) error: %v", tt.container, err)
		}
		if !strings.HasPrefix(c.ID(), tt.container+"-") {
			t.Errorf("Provision(%q).ID() = %q, want %q prefix", tt.container, c.ID(), tt.container+"-")
		}
		if s := c.Size(); s.Width != 600 || s.Height != 450 {
			t.Errorf("Provision(%q).Size() = %+v", tt.container, s)
		}
		switch tt.want.(type) {
		case *SVG:
			if _, ok := c.(*SVG); !ok {
				t.Errorf("Provision(%q) = %T, want *SVG", tt.container, c)
			}
		case *PNG:
			if _, ok := c.(*PNG); !ok {
				t.Errorf("Provision(%q) = %T, want *PNG", tt.container, c)
			}
		case *PDF:
			if _, ok := c.(*PDF); !ok {
				t.Errorf("Provision(%q) = %T, want *PDF", tt.container, c)
			}
		case *Recorder:
			if _, ok := c.(*Recorder); !ok {
				t.Errorf("Provision(%q) = %T, want *Recorder", tt.container, c)
			}
		}
	}
}

func TestProvisionUniqueIDs(t *testing.T) {
	a, _ := Provision("svg", 10, 10)
	b, _ := Provision("svg", 10, 10)
	if a.ID() == b.ID() {
		t.Errorf("two provisions share id %q", a.ID())
	}
}

func TestProvisionErrors(t *testing.T) {
	tests := []struct {
		name          string
		container     string
		width, height float64
	}{
		{"empty container", "", 100, 100},
		{"unknown container", "canvas", 100, 100},
		{"malformed container", "SVG!", 100, 100},
		{"zero width", "svg", 0, 100},
		{"negative height", "png", 100, -5},
		{"NaN size", "record", math.NaN(), 100},
		{"infinite size", "svg", math.Inf(1), 100},
		{"huge png", "png", 1e6, 1e6},
		{"wide svg", "svg", MaxCanvasExtent + 1, 100},
		{"tall record", "record", 100, MaxCanvasExtent + 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Provision(tt.container, tt.width, tt.height)
			if !errors.IsConfigError(err) {
				t.Errorf("Provision() error = %v, want INVALID_CONFIG", err)
			}
			if c != nil {
				t.Errorf("Provision() canvas = %v, want nil", c)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	if err := Check("png", MaxCanvasExtent, MaxCanvasExtent); err != nil {
		t.Errorf("Check(png, max, max) error = %v, want nil", err)
	}
	if err := Check("pdf:report", 600, 450); err != nil {
		t.Errorf("Check(pdf:report) error = %v, want nil", err)
	}
	if err := Check("png", 2*MaxCanvasExtent, 10); !errors.IsConfigError(err) {
		t.Errorf("Check(png, oversized) error = %v, want INVALID_CONFIG", err)
	}
}

func TestContainers(t *testing.T) {
	got := strings.Join(Containers(), ",")
	if got != "pdf,png,record,svg" {
		t.Errorf("Containers() = %s, want pdf,png,record,svg", got)
	}
}
