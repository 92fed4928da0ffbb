// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheets loads a workbook and reduces every sheet to a single column
// of text cells.
package sheets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// Workbook is the column view of every sheet that had data in the selected column.
type Workbook struct {
	// SheetNames lists every sheet in workbook order, skipped ones included.
	SheetNames []string

	// Sheets holds the extracted columns in workbook order.
	Sheets []types.Sheet

	// Skipped lists sheets that were empty or narrower than the column index.
	Skipped []string
}

// Sheet returns the extracted sheet with the given name.
func (wb *Workbook) Sheet(name string) (types.Sheet, bool) {
	for _, s := range wb.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return types.Sheet{}, false
}

// ReadFile opens the workbook at path and extracts columnIndex from every sheet.
// Skipped sheets are reported on w.
func ReadFile(path string, columnIndex int, w io.Writer) (*Workbook, error) {
	if columnIndex < 0 {
		return nil, fmt.Errorf("invalid column index %d", columnIndex)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.NewSourceError(types.ErrSourceNotFound, path, nil)
		}
		return nil, types.NewSourceError(types.ErrSourceNotFound, path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, types.NewSourceError(types.ErrMalformedSource, path, err)
	}
	defer f.Close()

	wb, err := readAll(f, columnIndex, w)
	if err != nil {
		return nil, types.NewSourceError(types.ErrMalformedSource, path, err)
	}
	return wb, nil
}

// Read extracts columnIndex from every sheet of a workbook held in r.
func Read(r io.Reader, columnIndex int, w io.Writer) (*Workbook, error) {
	if columnIndex < 0 {
		return nil, fmt.Errorf("invalid column index %d", columnIndex)
	}
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, types.NewSourceError(types.ErrMalformedSource, "<stream>", err)
	}
	defer f.Close()

	wb, err := readAll(f, columnIndex, w)
	if err != nil {
		return nil, types.NewSourceError(types.ErrMalformedSource, "<stream>", err)
	}
	return wb, nil
}

func readAll(f *excelize.File, columnIndex int, w io.Writer) (*Workbook, error) {
	wb := &Workbook{SheetNames: f.GetSheetList()}

	for _, name := range wb.SheetNames {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading rows of sheet %q: %w", name, err)
		}

		sheet, ok := FromRows(name, rows, columnIndex)
		if !ok {
			fmt.Fprintf(w, "skipping sheet %q: empty or too small\n", name)
			wb.Skipped = append(wb.Skipped, name)
			continue
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// FromRows selects columnIndex from a grid of cells. It reports false when the
// grid has no rows or no row reaches the column. Rows shorter than the column
// contribute an empty cell so row positions are preserved.
func FromRows(name string, rows [][]string, columnIndex int) (types.Sheet, bool) {
	if columnIndex < 0 || len(rows) == 0 || width(rows) <= columnIndex {
		return types.Sheet{}, false
	}

	cells := make([]string, len(rows))
	for i, row := range rows {
		if columnIndex < len(row) {
			cells[i] = row[columnIndex]
		}
	}
	return types.Sheet{Name: name, Cells: cells}, true
}

// width returns the length of the widest row.
func width(rows [][]string) int {
	n := 0
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}
