// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SerialNumberHeader is the first output column; it holds the sheet name.
const SerialNumberHeader = "Serial Number"

// Sheet is one workbook tab reduced to the scanned column.
type Sheet struct {
	// Name is the tab name, unique within the workbook.
	Name string `json:"name" yaml:"name"`

	// Cells holds the selected column top-to-bottom as text.
	Cells []string `json:"cells" yaml:"cells"`
}

// MatchResult maps a key label to the value extracted for it.
// Labels that matched no cell are absent.
type MatchResult map[string]string

// OutputRow is the sheet name followed by one value per key label.
type OutputRow []string

// Table is a delimited file in memory: a header and equal-width rows.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Width returns the number of header fields.
func (t Table) Width() int {
	return len(t.Header)
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}
