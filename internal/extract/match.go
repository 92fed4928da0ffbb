// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// MatchLabels scans cells top-to-bottom and records a value for every label a
// cell contains. The value is the cell text with the label removed and outer
// whitespace trimmed.
//
// A later cell overwrites an earlier value for the same label. Every label is
// tested against every cell, so a cell holding two labels registers both,
// each trimmed around its own label only. A cell holding nothing but the label
// yields an empty value; neighbouring cells are never consulted.
func MatchLabels(cells []string, labels []string) types.MatchResult {
	return scanCells(cells, labels, nil)
}

// scanCells is MatchLabels with a callback invoked on every match, in scan order.
func scanCells(cells []string, labels []string, onMatch func(label, value string)) types.MatchResult {
	found := make(types.MatchResult, len(labels))
	for _, cell := range cells {
		for _, label := range labels {
			if label == "" || !strings.Contains(cell, label) {
				continue
			}
			v := strings.TrimSpace(strings.ReplaceAll(cell, label, ""))
			found[label] = v
			if onMatch != nil {
				onMatch(label, v)
			}
		}
	}
	return found
}

// MatchSheet runs MatchLabels over one sheet and reports every match as it is
// found, so an overwritten value shows up before the one that replaced it. A
// warning follows when some labels were not found.
func MatchSheet(sheet types.Sheet, labels []string, w io.Writer) types.MatchResult {
	fmt.Fprintf(w, "processing sheet %q\n", sheet.Name)

	found := scanCells(sheet.Cells, labels, func(label, value string) {
		fmt.Fprintf(w, "  found %q -> %q\n", label, value)
	})
	if missing := missingLabels(found, labels); len(missing) > 0 {
		fmt.Fprintf(w, "  warning: only %d/%d values were found\n", len(labels)-len(missing), len(labels))
	}
	return found
}

// missingLabels returns the labels absent from found, in label order.
func missingLabels(found types.MatchResult, labels []string) []string {
	var missing []string
	for _, label := range labels {
		if _, ok := found[label]; !ok {
			missing = append(missing, label)
		}
	}
	return missing
}
