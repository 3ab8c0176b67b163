package sink

import (
	"context"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/errors"
)

// Canvas is a provisioned drawing surface that can encode what was drawn
// on it.
type Canvas interface {
	chart.Surface

	// ID is the unique identifier assigned at provisioning time.
	ID() string

	// Size is the canvas extent in pixels.
	Size() chart.Size

	// Encode returns the canvas content in its container's format.
	Encode(ctx context.Context) ([]byte, error)
}

// Factory creates a canvas of the given size.
type Factory func(id string, width, height float64) Canvas

var containers = map[string]Factory{
	"svg":    func(id string, w, h float64) Canvas { return NewSVG(id, w, h) },
	"png":    func(id string, w, h float64) Canvas { return NewPNG(id, w, h) },
	"pdf":    func(id string, w, h float64) Canvas { return NewPDF(id, w, h) },
	"record": func(id string, w, h float64) Canvas { return NewRecorder(id, w, h) },
}

// Containers returns the known container kinds in sorted order.
func Containers() []string {
	kinds := make([]string, 0, len(containers))
	for k := range containers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// MaxCanvasExtent bounds each canvas side in pixels. A raster canvas at
// the limit holds 1 GiB of RGBA.
const MaxCanvasExtent = 16384

// Provision creates a canvas for containerID sized width x height.
//
// A container id is a kind ("svg", "png", "pdf", "record"), optionally
// followed by ":name". The returned canvas id is the container id plus a
// random suffix, so two provisions never share an id.
//
// Provision fails with INVALID_CONFIG whenever [Check] does.
func Provision(containerID string, width, height float64) (Canvas, error) {
	if err := Check(containerID, width, height); err != nil {
		return nil, err
	}
	kind, _, _ := strings.Cut(containerID, ":")
	return containers[kind](containerID+"-"+uuid.NewString(), width, height), nil
}

// Check validates a provisioning request without allocating a canvas.
// Unknown or malformed container ids and sizes that are non-positive,
// non-finite or larger than [MaxCanvasExtent] are INVALID_CONFIG errors.
func Check(containerID string, width, height float64) error {
	if err := errors.ValidateContainerID(containerID); err != nil {
		return err
	}
	kind, _, _ := strings.Cut(containerID, ":")
	if _, ok := containers[kind]; !ok {
		return errors.Config("unknown container %q (want one of %s)", containerID, strings.Join(Containers(), ", "))
	}
	if !validExtent(width) || !validExtent(height) {
		return errors.Config("invalid canvas size %v x %v", width, height)
	}
	if width > MaxCanvasExtent || height > MaxCanvasExtent {
		return errors.Config("canvas size %v x %v exceeds %d px per side", width, height, MaxCanvasExtent)
	}
	return nil
}

func validExtent(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
