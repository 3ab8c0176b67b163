package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/barchart/pkg/chart"
)

// WriteJSON encodes d as an indented {"data": [...]} document.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d chart.Dataset, w io.Writer) error {
	if d == nil {
		d = chart.Dataset{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Data: d}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes d to the file at path, replacing any existing file.
func ExportJSON(path string, d chart.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(d, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
