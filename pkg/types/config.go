// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// DefaultSentinel fills output columns for labels that matched no cell.
const DefaultSentinel = "N/A"

// DefaultKeyLabels are the calibration log prefixes scanned for in every
// sheet. The trailing spaces are part of the label.
var DefaultKeyLabels = []string{
	"PHASE_3_STARTUP_OFFSET value (decimal): ",
	"use_3 average at float: ",
	"use_3 average at detected: ",
	"PHASE_3_STARTUP_THRESHOLD: ",
	"Calculated PHASE_3_STARTUP_CONFIG: ",
}

// ExtractionConfig holds settings for the extract stage.
type ExtractionConfig struct {
	// SourcePath is the workbook to scan.
	SourcePath string `json:"source_path" yaml:"source_path" mapstructure:"source_path"`

	// OutputPath is the delimited file the rows are written to.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// KeyLabels lists the match prefixes. Their order is the output column order.
	KeyLabels []string `json:"key_labels" yaml:"key_labels" mapstructure:"key_labels"`

	// ColumnIndex selects the scanned column (0 = column A).
	ColumnIndex int `json:"column_index" yaml:"column_index" mapstructure:"column_index"`

	// Sentinel replaces values for labels that were not found (default "N/A").
	Sentinel string `json:"sentinel" yaml:"sentinel" mapstructure:"sentinel"`

	// ReportPath, when set, receives a YAML run report.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty" mapstructure:"report_path"`

	// Preview prints the row count and first entries of every extracted sheet.
	Preview bool `json:"preview" yaml:"preview" mapstructure:"preview"`
}

// DefaultExtractionConfig returns the settings the calibration runs use.
func DefaultExtractionConfig() ExtractionConfig {
	labels := make([]string, len(DefaultKeyLabels))
	copy(labels, DefaultKeyLabels)
	return ExtractionConfig{
		SourcePath:  "Prox Sensor Calibration Grounding Data Only (Trial 2).xlsx",
		OutputPath:  "grounding_test_data_trial2.csv",
		KeyLabels:   labels,
		ColumnIndex: 0,
		Sentinel:    DefaultSentinel,
	}
}

// Validate reports configuration errors that would make extraction meaningless.
func (c ExtractionConfig) Validate() error {
	if c.SourcePath == "" {
		return errors.New("source path is required")
	}
	if c.OutputPath == "" {
		return errors.New("output path is required")
	}
	if c.ColumnIndex < 0 {
		return fmt.Errorf("column index must be >= 0, got %d", c.ColumnIndex)
	}
	if len(c.KeyLabels) == 0 {
		return errors.New("at least one key label is required")
	}
	seen := make(map[string]bool, len(c.KeyLabels))
	for i, l := range c.KeyLabels {
		if l == "" {
			return fmt.Errorf("key label %d is empty", i+1)
		}
		if seen[l] {
			return fmt.Errorf("key label %d %q is repeated", i+1, l)
		}
		seen[l] = true
	}
	return nil
}

// MergeConfig holds settings for the merge stage.
type MergeConfig struct {
	// InputPaths lists the files to merge, in output order. Missing files are skipped.
	InputPaths []string `json:"input_paths" yaml:"input_paths" mapstructure:"input_paths"`

	// OutputPath is the merged delimited file.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`
}

// DefaultMergeConfig returns the per-day extraction files merged after a
// calibration campaign.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		InputPaths: []string{
			"day1.0_extracted_sensor_data.csv",
			"day1.1_extracted_sensor_data.csv",
			"day2.0_extracted_sensor_data.csv",
		},
		OutputPath: "merged_sensor_data.csv",
	}
}

// Validate checks that the merge has somewhere to write.
func (c MergeConfig) Validate() error {
	if c.OutputPath == "" {
		return errors.New("output path is required")
	}
	return nil
}

// ExportFormat selects the export target.
type ExportFormat string

const (
	ExportSQLite ExportFormat = "sqlite"
	ExportYAML   ExportFormat = "yaml"
	ExportJSON   ExportFormat = "json"
)

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// Format is sqlite, yaml or json.
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`

	// OutPath is the database file or document written.
	OutPath string `json:"out_path" yaml:"out_path" mapstructure:"out_path"`

	// Table names the SQLite table the rows are loaded into.
	Table string `json:"table" yaml:"table" mapstructure:"table"`
}

// DefaultExportConfig returns the SQLite export defaults.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:  ExportSQLite,
		OutPath: "sensor_data.db",
		Table:   "readings",
	}
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Extract ExtractionConfig `json:"extract" yaml:"extract" mapstructure:"extract"`
	Merge   MergeConfig      `json:"merge" yaml:"merge" mapstructure:"merge"`
	Export  ExportConfig     `json:"export" yaml:"export" mapstructure:"export"`
}

// DefaultPipelineConfig returns the defaults for every stage.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Extract: DefaultExtractionConfig(),
		Merge:   DefaultMergeConfig(),
		Export:  DefaultExportConfig(),
	}
}
