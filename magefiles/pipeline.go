package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract runs the extract stage on the configured workbook.
func Extract() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "extract", "--report", "extract-report.yaml")
}

// Merge combines the configured per-day extraction files.
func Merge() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "merge")
}

// Export loads the merged file into the SQLite database.
func Export() error {
	mg.Deps(Merge)
	return sh.RunV(binPath, "export", "merged_sensor_data.csv")
}

// All extracts, merges and exports in sequence.
func All() {
	mg.SerialDeps(Extract, Merge, Export)
}
