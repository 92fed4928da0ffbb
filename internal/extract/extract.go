// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls labeled calibration values out of workbook sheets.
// Each sheet's scanned column is matched against an ordered list of key
// labels and reduced to one output row: the sheet name followed by one value
// per label.
package extract

import (
	"fmt"
	"io"

	"github.com/pdiddy/sensor-sheets/internal/sheets"
	"github.com/pdiddy/sensor-sheets/internal/tabular"
	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// previewEntries is how many cells the sheet preview prints.
const previewEntries = 5

// SheetStatus records what happened to one sheet.
type SheetStatus string

const (
	SheetExtracted SheetStatus = "extracted"
	SheetSkipped   SheetStatus = "skipped"
)

// SheetReport describes the outcome for a single sheet.
type SheetReport struct {
	Name    string      `json:"name" yaml:"name"`
	Status  SheetStatus `json:"status" yaml:"status"`
	Cells   int         `json:"cells" yaml:"cells"`
	Matched int         `json:"matched" yaml:"matched"`
	Missing []string    `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Summary holds counts from an extraction run.
type Summary struct {
	Rows    int
	Skipped int
	Partial int
	Sheets  []SheetReport
}

// Total returns the number of sheets seen.
func (s Summary) Total() int {
	return s.Rows + s.Skipped
}

// HasPartial reports whether any emitted row carries sentinel values.
func (s Summary) HasPartial() bool {
	return s.Partial > 0
}

// ExtractSheets matches every sheet against cfg.KeyLabels and returns one row
// per sheet, in sheet order.
func ExtractSheets(in []types.Sheet, cfg types.ExtractionConfig, w io.Writer) ([]types.OutputRow, Summary) {
	sentinel := cfg.Sentinel
	if sentinel == "" {
		sentinel = types.DefaultSentinel
	}

	var summary Summary
	rows := make([]types.OutputRow, 0, len(in))

	for _, sheet := range in {
		found := MatchSheet(sheet, cfg.KeyLabels, w)
		rows = append(rows, BuildRow(sheet.Name, found, cfg.KeyLabels, sentinel))

		missing := missingLabels(found, cfg.KeyLabels)
		if len(missing) > 0 {
			summary.Partial++
		}
		summary.Rows++
		summary.Sheets = append(summary.Sheets, SheetReport{
			Name:    sheet.Name,
			Status:  SheetExtracted,
			Cells:   len(sheet.Cells),
			Matched: len(found),
			Missing: missing,
		})
	}

	return rows, summary
}

// Table assembles extracted rows under the output header.
func Table(rows []types.OutputRow, labels []string) types.Table {
	t := types.Table{Header: Header(labels), Rows: make([][]string, len(rows))}
	for i, r := range rows {
		t.Rows[i] = r
	}
	return t
}

// Run reads the workbook at cfg.SourcePath, extracts one row per sheet and
// writes them to cfg.OutputPath. When the workbook is missing or unreadable
// nothing is written.
func Run(cfg types.ExtractionConfig, w io.Writer) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid extraction config: %w", err)
	}

	wb, err := sheets.ReadFile(cfg.SourcePath, cfg.ColumnIndex, w)
	if err != nil {
		return Summary{}, fmt.Errorf("reading workbook: %w", err)
	}

	rows, summary := ExtractSheets(wb.Sheets, cfg, w)
	summary.Skipped = len(wb.Skipped)
	summary.Sheets = mergeReports(wb.SheetNames, summary.Sheets)

	if cfg.Preview {
		preview(wb.Sheets, w)
	}

	if err := tabular.WriteFile(cfg.OutputPath, Table(rows, cfg.KeyLabels)); err != nil {
		return summary, fmt.Errorf("writing output: %w", err)
	}
	fmt.Fprintf(w, "\nwrote %d rows to %s (%d skipped, %d partial)\n",
		summary.Rows, cfg.OutputPath, summary.Skipped, summary.Partial)

	if cfg.ReportPath != "" {
		if err := WriteReport(cfg.ReportPath, cfg, summary); err != nil {
			return summary, fmt.Errorf("writing report: %w", err)
		}
	}

	return summary, nil
}

// mergeReports interleaves skipped sheets into the extracted reports so the
// result follows workbook order.
func mergeReports(names []string, extracted []SheetReport) []SheetReport {
	byName := make(map[string]SheetReport, len(extracted))
	for _, r := range extracted {
		byName[r.Name] = r
	}
	out := make([]SheetReport, 0, len(names))
	for _, name := range names {
		if r, ok := byName[name]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, SheetReport{Name: name, Status: SheetSkipped})
	}
	return out
}

// preview prints the row count and first entries of every sheet.
func preview(in []types.Sheet, w io.Writer) {
	fmt.Fprintln(w, "\nsheet summary:")
	for _, s := range in {
		n := min(len(s.Cells), previewEntries)
		fmt.Fprintf(w, "  %s (%d rows): %q\n", s.Name, len(s.Cells), s.Cells[:n])
	}
}
