// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// ExportYAML writes t to path as a YAML document with header and rows.
func ExportYAML(path string, t types.Table) error {
	data, err := yaml.Marshal(&t)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeFile(path, data)
}

// ExportJSON writes t to path as an indented JSON document with header and rows.
func ExportJSON(path string, t types.Table) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// Export writes t in the format selected by cfg and reports the result on w.
func Export(ctx context.Context, cfg types.ExportConfig, t types.Table, w io.Writer) error {
	switch cfg.Format {
	case types.ExportSQLite, "":
		s, err := NewStore(cfg.OutPath)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.WriteTable(ctx, cfg.Table, t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "loaded %d rows into %s table %q\n", n, cfg.OutPath, cfg.Table)
	case types.ExportYAML:
		if err := ExportYAML(cfg.OutPath, t); err != nil {
			return err
		}
		fmt.Fprintf(w, "exported %d rows to %s\n", t.Len(), cfg.OutPath)
	case types.ExportJSON:
		if err := ExportJSON(cfg.OutPath, t); err != nil {
			return err
		}
		fmt.Fprintf(w, "exported %d rows to %s\n", t.Len(), cfg.OutPath)
	default:
		return fmt.Errorf("unsupported format %q: use sqlite, yaml or json", cfg.Format)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return types.NewSourceError(types.ErrDestinationWrite, path, err)
	}
	return nil
}
