// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sensor-sheets/internal/merge"
	"github.com/pdiddy/sensor-sheets/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merge extraction outputs into one file",
	Long: `Merge reads each input file, aligns columns by header name and writes
all rows to one file: every row of the first file in its original order, then
every row of the second, and so on. Missing input files are skipped with a
warning; a file that exists but cannot be parsed aborts the merge.`,
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	pc, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := pc.Merge
	if len(args) > 0 {
		cfg.InputPaths = args
	}

	_, err = merge.Run(context.Background(), cfg, os.Stdout)
	return err
}

func init() {
	mergeCmd.Flags().StringP("output", "o", types.DefaultMergeConfig().OutputPath, "merged output file")

	bindFlag(mergeCmd, "merge.output_path", "output")

	rootCmd.AddCommand(mergeCmd)
}
