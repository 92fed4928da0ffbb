// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

var labels = types.DefaultKeyLabels

func TestMatchLabels(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  types.MatchResult
	}{
		{
			name:  "no cells",
			cells: nil,
			want:  types.MatchResult{},
		},
		{
			name:  "no matching cells",
			cells: []string{"boot", "PHASE_3 something else", ""},
			want:  types.MatchResult{},
		},
		{
			name:  "value after label",
			cells: []string{"PHASE_3_STARTUP_OFFSET value (decimal): 12.5", "other text"},
			want:  types.MatchResult{labels[0]: "12.5"},
		},
		{
			name:  "label in the middle of the cell",
			cells: []string{"[10:02:11] use_3 average at float:    803  "},
			want:  types.MatchResult{labels[1]: "[10:02:11]    803"},
		},
		{
			name: "all labels",
			cells: []string{
				"PHASE_3_STARTUP_OFFSET value (decimal): 12",
				"use_3 average at float: 800",
				"use_3 average at detected: 950",
				"PHASE_3_STARTUP_THRESHOLD: 75",
				"Calculated PHASE_3_STARTUP_CONFIG: 0x4B0C",
			},
			want: types.MatchResult{
				labels[0]: "12",
				labels[1]: "800",
				labels[2]: "950",
				labels[3]: "75",
				labels[4]: "0x4B0C",
			},
		},
		{
			name: "last match wins",
			cells: []string{
				"PHASE_3_STARTUP_THRESHOLD: 70",
				"noise",
				"PHASE_3_STARTUP_THRESHOLD: 75",
			},
			want: types.MatchResult{labels[3]: "75"},
		},
		{
			name:  "label fills the whole cell",
			cells: []string{"PHASE_3_STARTUP_THRESHOLD: ", "75"},
			want:  types.MatchResult{labels[3]: ""},
		},
		{
			name:  "label without trailing space does not match",
			cells: []string{"PHASE_3_STARTUP_THRESHOLD:"},
			want:  types.MatchResult{},
		},
		{
			name:  "one cell holding two labels registers both",
			cells: []string{"use_3 average at float: 1 use_3 average at detected: 2"},
			want: types.MatchResult{
				labels[1]: "1 use_3 average at detected: 2",
				labels[2]: "use_3 average at float: 1 2",
			},
		},
		{
			name:  "repeated label in one cell is removed everywhere",
			cells: []string{"PHASE_3_STARTUP_THRESHOLD: 5 PHASE_3_STARTUP_THRESHOLD: 6"},
			want:  types.MatchResult{labels[3]: "5 6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchLabels(tt.cells, labels)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchLabels_EmptyLabelIgnored(t *testing.T) {
	got := MatchLabels([]string{"anything"}, []string{"", "any"})
	assert.Equal(t, types.MatchResult{"any": "thing"}, got)
}

func TestMatchSheet_Diagnostics(t *testing.T) {
	var log bytes.Buffer
	sheet := types.Sheet{Name: "Unit7", Cells: []string{"PHASE_3_STARTUP_THRESHOLD: 75"}}

	got := MatchSheet(sheet, labels, &log)

	assert.Equal(t, types.MatchResult{labels[3]: "75"}, got)
	out := log.String()
	assert.Contains(t, out, `processing sheet "Unit7"`)
	assert.Contains(t, out, `found "PHASE_3_STARTUP_THRESHOLD: " -> "75"`)
	assert.Contains(t, out, "warning: only 1/5 values were found")
}

func TestMatchSheet_LogsEveryOccurrence(t *testing.T) {
	var log bytes.Buffer
	sheet := types.Sheet{Name: "Unit3", Cells: []string{
		"PHASE_3_STARTUP_THRESHOLD: 70",
		"noise",
		"PHASE_3_STARTUP_THRESHOLD: 75",
	}}

	got := MatchSheet(sheet, labels, &log)

	assert.Equal(t, "75", got[labels[3]])
	out := log.String()
	first := strings.Index(out, `found "PHASE_3_STARTUP_THRESHOLD: " -> "70"`)
	second := strings.Index(out, `found "PHASE_3_STARTUP_THRESHOLD: " -> "75"`)
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first, "the replacing value is logged after the replaced one")
}

func TestMatchSheet_NoWarningWhenComplete(t *testing.T) {
	var log bytes.Buffer
	sheet := types.Sheet{Name: "U", Cells: []string{"a: 1", "b: 2"}}

	MatchSheet(sheet, []string{"a: ", "b: "}, &log)

	assert.NotContains(t, log.String(), "warning")
}

func TestBuildRow(t *testing.T) {
	tests := []struct {
		name  string
		found types.MatchResult
		want  types.OutputRow
	}{
		{
			name:  "nothing matched",
			found: types.MatchResult{},
			want:  types.OutputRow{"Unit1", "N/A", "N/A", "N/A", "N/A", "N/A"},
		},
		{
			name:  "partial match keeps label order",
			found: types.MatchResult{labels[4]: "cfg", labels[0]: "12.5"},
			want:  types.OutputRow{"Unit1", "12.5", "N/A", "N/A", "N/A", "cfg"},
		},
		{
			name:  "empty value is not replaced by sentinel",
			found: types.MatchResult{labels[2]: ""},
			want:  types.OutputRow{"Unit1", "N/A", "N/A", "", "N/A", "N/A"},
		},
		{
			name:  "labels outside the configured set are ignored",
			found: types.MatchResult{"stray": "x"},
			want:  types.OutputRow{"Unit1", "N/A", "N/A", "N/A", "N/A", "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRow("Unit1", tt.found, labels, types.DefaultSentinel)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(labels)+1)
		})
	}
}

func TestHeader(t *testing.T) {
	got := Header([]string{"a: ", "b: "})
	assert.Equal(t, []string{"Serial Number", "a: ", "b: "}, got)
}
