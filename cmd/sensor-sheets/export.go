// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sensor-sheets/internal/store"
	"github.com/pdiddy/sensor-sheets/internal/tabular"
	"github.com/pdiddy/sensor-sheets/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <table.csv>",
	Short: "Export an extracted or merged table to SQLite, YAML or JSON",
	Long: `Export loads a delimited table (the output of extract or merge) and
writes it to a SQLite database table, replacing any previous contents, or to
a YAML or JSON document holding the header and rows.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	pc, err := loadConfig()
	if err != nil {
		return err
	}

	t, err := tabular.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading table: %w", err)
	}

	return store.Export(context.Background(), pc.Export, t, os.Stdout)
}

func init() {
	defaults := types.DefaultExportConfig()

	exportCmd.Flags().String("format", string(defaults.Format), "export format: sqlite, yaml or json")
	exportCmd.Flags().String("out", defaults.OutPath, "database or document path")
	exportCmd.Flags().String("table", defaults.Table, "SQLite table name")

	bindFlag(exportCmd, "export.format", "format")
	bindFlag(exportCmd, "export.out_path", "out")
	bindFlag(exportCmd, "export.table", "table")

	rootCmd.AddCommand(exportCmd)
}
