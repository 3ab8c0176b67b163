package io

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/errors"
)

// Source formats understood by [Read] and [Import].
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

type document struct {
	Data chart.Dataset `json:"data" toml:"data"`
}

// ReadJSON decodes a dataset from r. The input is either an array of
// points or an object with a "data" array:
//
//	[{"label": "Jan", "value": 50}, {"label": "Feb", "value": 120}]
//	{"data": [{"label": "Jan", "value": 50}]}
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (chart.Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	if len(raw) > 0 && raw[0] == '[' {
		var d chart.Dataset
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json dataset")
		}
		return d, nil
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json dataset")
	}
	return doc.Data, nil
}

// ReadTOML decodes a dataset from an array of [[data]] tables:
//
//	[[data]]
//	label = "Jan"
//	value = 50
func ReadTOML(r io.Reader) (chart.Dataset, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml dataset")
	}
	return doc.Data, nil
}

// ReadCSV decodes "label,value" records. A first record whose value does
// not parse as a number is treated as a header and skipped. Blank lines are
// ignored.
func ReadCSV(r io.Reader) (chart.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode csv dataset")
	}
	return fromRows(records, "line")
}

// ReadXLSX decodes a dataset from a spreadsheet: labels in column A,
// values in column B. An empty sheet name selects the first sheet. A
// header row is detected the same way as in [ReadCSV].
func ReadXLSX(r io.Reader, sheet string) (chart.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook")
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sheet %q not found", sheet)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", sheet)
	}
	return fromRows(rows, "row")
}

func fromRows(rows [][]string, unit string) (chart.Dataset, error) {
	var d chart.Dataset
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		if len(row) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s %d: want label and value, got %d field(s)", unit, i+1, len(row))
		}
		label := strings.TrimSpace(row[0])
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			if len(d) == 0 && i == firstNonBlank(rows) {
				continue
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s %d: invalid value %q", unit, i+1, row[1])
		}
		d = append(d, chart.DataPoint{Label: label, Value: v})
	}
	return d, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func firstNonBlank(rows [][]string) int {
	for i, row := range rows {
		if !isBlank(row) {
			return i
		}
	}
	return -1
}

// Read decodes a dataset in the given format. For xlsx the first sheet is
// used.
func Read(r io.Reader, format string) (chart.Dataset, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r, "")
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset format %q (want json, toml, csv or xlsx)", format)
}

// FormatFromPath returns the dataset format implied by the extension of
// path.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer dataset format from %q", path)
	}
}

// Import reads the dataset file at path, picking the decoder from the file
// extension.
func Import(path string) (chart.Dataset, error) {
	return ImportSheet(path, "")
}

// ImportSheet is [Import] with an explicit sheet name for xlsx files. The
// sheet is ignored for other formats.
func ImportSheet(path, sheet string) (chart.Dataset, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatXLSX {
		return ReadXLSX(f, sheet)
	}
	return Read(f, format)
}
