// Package io reads and writes chart datasets and chart config files.
//
// # Datasets
//
// A dataset is an ordered list of labeled values. Four source formats are
// supported, chosen from the file extension by [Import]:
//
//   - .json: an array of {"label", "value"} objects, or {"data": [...]}
//   - .toml: [[data]] tables with label and value keys
//   - .csv: label,value records with an optional header line
//   - .xlsx: labels in column A and values in column B of the first sheet
//     (or the sheet passed to [ImportSheet])
//
// [Read] decodes from any io.Reader when the format is known, for example
// when reading from stdin.
//
// Decoding failures are INVALID_INPUT errors, a missing file is
// FILE_NOT_FOUND and an unknown extension is INVALID_FORMAT. An empty
// dataset decodes successfully; rejecting it is left to chart construction.
//
// # Export
//
// [ExportJSON] and [WriteJSON] write the {"data": [...]} form, which
// [ReadJSON] reads back.
//
// # Config Files
//
// [LoadConfig] and [SaveConfig] read and write chart options as TOML using
// the same keys as the JSON form of chart.Config.
package io
