// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sensor-sheets CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sensor-sheets CLI.
var rootCmd = &cobra.Command{
	Use:   "sensor-sheets",
	Short: "Extract and merge proximity sensor calibration data",
	Long: `sensor-sheets turns calibration workbooks into tables. Each sheet of a
workbook holds the log of one unit; extract scans a column of every sheet for
known labels and writes one row per unit. merge combines the per-day tables
into one file, and export loads a table into SQLite, YAML or JSON.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sensor-sheets.yaml or ~/.config/sensor-sheets/sensor-sheets.yaml)")
}

func initConfig() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	// Start from a clean viper so a config file read by an earlier execution
	// does not leak into this one.
	viper.Reset()
	setDefaults(viper.GetViper(), types.DefaultPipelineConfig())
	for _, b := range flagBindings {
		if err := viper.BindPFlag(b.key, b.flag); err != nil {
			fmt.Fprintf(os.Stderr, "warning: binding flag --%s: %v\n", b.flag.Name, err)
		}
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sensor-sheets")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sensor-sheets"))
		}
	}

	viper.SetEnvPrefix("SENSOR_SHEETS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config file %s: %v\n", cfgFile, err)
	}
}

// setDefaults registers every configuration key so that environment
// variables are picked up when the section is unmarshaled.
func setDefaults(v *viper.Viper, cfg types.PipelineConfig) {
	v.SetDefault("extract.source_path", cfg.Extract.SourcePath)
	v.SetDefault("extract.output_path", cfg.Extract.OutputPath)
	v.SetDefault("extract.key_labels", cfg.Extract.KeyLabels)
	v.SetDefault("extract.column_index", cfg.Extract.ColumnIndex)
	v.SetDefault("extract.sentinel", cfg.Extract.Sentinel)
	v.SetDefault("extract.report_path", cfg.Extract.ReportPath)
	v.SetDefault("extract.preview", cfg.Extract.Preview)

	v.SetDefault("merge.input_paths", cfg.Merge.InputPaths)
	v.SetDefault("merge.output_path", cfg.Merge.OutputPath)

	v.SetDefault("export.format", string(cfg.Export.Format))
	v.SetDefault("export.out_path", cfg.Export.OutPath)
	v.SetDefault("export.table", cfg.Export.Table)
}

// flagBinding ties a command flag to a configuration key.
type flagBinding struct {
	key  string
	flag *pflag.Flag
}

// flagBindings is applied to viper by initConfig on every execution.
var flagBindings []flagBinding

// bindFlag registers a command flag as the source of a configuration key.
func bindFlag(cmd *cobra.Command, key, flag string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil {
		panic(fmt.Sprintf("binding flag %s: no such flag on %s", flag, cmd.Name()))
	}
	flagBindings = append(flagBindings, flagBinding{key: key, flag: f})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves every stage configuration from flags, environment,
// config file and defaults, in that order of precedence.
func loadConfig() (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}
