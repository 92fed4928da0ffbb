// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "github.com/pdiddy/sensor-sheets/pkg/types"

// Header returns the output header: the serial number column followed by the labels.
func Header(labels []string) []string {
	h := make([]string, 0, len(labels)+1)
	h = append(h, types.SerialNumberHeader)
	return append(h, labels...)
}

// BuildRow lays found out in label order after the sheet name. Labels without
// a value get sentinel. The row is always len(labels)+1 wide.
func BuildRow(sheetName string, found types.MatchResult, labels []string, sentinel string) types.OutputRow {
	row := make(types.OutputRow, 0, len(labels)+1)
	row = append(row, sheetName)
	for _, label := range labels {
		v, ok := found[label]
		if !ok {
			v = sentinel
		}
		row = append(row, v)
	}
	return row
}
