// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sensor-sheets/internal/extract"
	"github.com/pdiddy/sensor-sheets/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [workbook]",
	Short: "Extract labeled calibration values from every sheet of a workbook",
	Long: `Extract scans one column of every sheet for the configured key labels
and writes one row per sheet: the sheet name (serial number) followed by the
text after each label. Labels that do not appear get the sentinel value.
Empty sheets are skipped. When the same label appears more than once the last
occurrence wins.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractConfig(cmd, args)
	if err != nil {
		return err
	}

	_, err = extract.Run(cfg, os.Stdout)
	return err
}

// extractConfig layers the positional workbook and --label flags over the
// resolved configuration.
func extractConfig(cmd *cobra.Command, args []string) (types.ExtractionConfig, error) {
	pc, err := loadConfig()
	if err != nil {
		return types.ExtractionConfig{}, err
	}
	cfg := pc.Extract
	if len(args) > 0 {
		cfg.SourcePath = args[0]
	}
	if cmd.Flags().Changed("label") {
		labels, _ := cmd.Flags().GetStringArray("label")
		cfg.KeyLabels = labels
	}
	return cfg, nil
}

func init() {
	defaults := types.DefaultExtractionConfig()

	extractCmd.Flags().StringP("output", "o", defaults.OutputPath, "output delimited file")
	extractCmd.Flags().Int("column", defaults.ColumnIndex, "0-based index of the scanned column")
	extractCmd.Flags().StringArray("label", nil, "key label to match (repeatable, replaces the configured labels)")
	extractCmd.Flags().String("sentinel", defaults.Sentinel, "value written for labels that were not found")
	extractCmd.Flags().String("report", "", "write a YAML run report to this path")
	extractCmd.Flags().Bool("preview", false, "print the row count and first entries of every sheet")

	bindFlag(extractCmd, "extract.output_path", "output")
	bindFlag(extractCmd, "extract.column_index", "column")
	bindFlag(extractCmd, "extract.sentinel", "sentinel")
	bindFlag(extractCmd, "extract.report_path", "report")
	bindFlag(extractCmd, "extract.preview", "preview")

	rootCmd.AddCommand(extractCmd)
}
