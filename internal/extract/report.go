// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// Report is the on-disk record of an extraction run. It lets a technician see
// which units were skipped or came back with missing values without rereading
// the console output.
type Report struct {
	Source  string        `yaml:"source"`
	Output  string        `yaml:"output"`
	Config  ReportConfig  `yaml:"config"`
	Sheets  []SheetReport `yaml:"sheets"`
	Summary ReportSummary `yaml:"summary"`
}

// ReportConfig stores the matching settings that produced the rows.
type ReportConfig struct {
	ColumnIndex int      `yaml:"column_index"`
	KeyLabels   []string `yaml:"key_labels"`
	Sentinel    string   `yaml:"sentinel"`
}

// ReportSummary stores row counts and a timestamp.
type ReportSummary struct {
	Rows      int       `yaml:"rows"`
	Skipped   int       `yaml:"skipped"`
	Partial   int       `yaml:"partial"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReport saves the run settings and per-sheet outcomes to a YAML file.
func WriteReport(path string, cfg types.ExtractionConfig, s Summary) error {
	sentinel := cfg.Sentinel
	if sentinel == "" {
		sentinel = types.DefaultSentinel
	}
	r := Report{
		Source: cfg.SourcePath,
		Output: cfg.OutputPath,
		Config: ReportConfig{
			ColumnIndex: cfg.ColumnIndex,
			KeyLabels:   cfg.KeyLabels,
			Sentinel:    sentinel,
		},
		Sheets: s.Sheets,
		Summary: ReportSummary{
			Rows:      s.Rows,
			Skipped:   s.Skipped,
			Partial:   s.Partial,
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return types.NewSourceError(types.ErrDestinationWrite, path, err)
	}
	return nil
}

// ReadReport loads a previously written report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
