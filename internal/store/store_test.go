// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

func sampleTable() types.Table {
	return types.Table{
		Header: []string{"Serial Number", "PHASE_3_STARTUP_OFFSET value (decimal): ", `odd "name"`},
		Rows: [][]string{
			{"Unit2", "12.5", ""},
			{"Unit1", "N/A", "x"},
		},
	}
}

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "sensor_data.db")
	s, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestWriteTable_RoundTrip(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	n, err := s.WriteTable(ctx, "readings", sampleTable())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.ReadTable(ctx, "readings")
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), got)
}

func TestWriteTable_Replaces(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	_, err := s.WriteTable(ctx, "readings", sampleTable())
	require.NoError(t, err)

	next := types.Table{Header: []string{"Serial Number"}, Rows: [][]string{{"Unit9"}}}
	_, err = s.WriteTable(ctx, "readings", next)
	require.NoError(t, err)

	got, err := s.ReadTable(ctx, "readings")
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestWriteTable_Errors(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	_, err := s.WriteTable(ctx, "", sampleTable())
	assert.ErrorContains(t, err, "table name is required")

	_, err = s.WriteTable(ctx, "empty", types.Table{})
	assert.ErrorContains(t, err, "has no columns")

	_, err = s.WriteTable(ctx, "ragged", types.Table{Header: []string{"a", "b"}, Rows: [][]string{{"1"}}})
	assert.ErrorContains(t, err, "row 1 has 1 fields")

	_, err = s.ReadTable(ctx, "ragged")
	assert.Error(t, err, "failed write must roll back the new table")
}

func TestExportYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, ExportYAML(path, sampleTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got types.Table
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, sampleTable(), got)
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, ExportJSON(path, sampleTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got types.Table
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleTable(), got)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     types.ExportConfig
		wantLog string
		errMsg  string
	}{
		{
			name:    "sqlite",
			cfg:     types.ExportConfig{Format: types.ExportSQLite, OutPath: filepath.Join(dir, "out.db"), Table: "readings"},
			wantLog: `loaded 2 rows into`,
		},
		{
			name:    "yaml",
			cfg:     types.ExportConfig{Format: types.ExportYAML, OutPath: filepath.Join(dir, "out.yaml")},
			wantLog: "exported 2 rows to",
		},
		{
			name:    "json",
			cfg:     types.ExportConfig{Format: types.ExportJSON, OutPath: filepath.Join(dir, "out.json")},
			wantLog: "exported 2 rows to",
		},
		{
			name:   "unknown format",
			cfg:    types.ExportConfig{Format: "xml", OutPath: filepath.Join(dir, "out.xml")},
			errMsg: "unsupported format",
		},
		{
			name:   "unwritable document",
			cfg:    types.ExportConfig{Format: types.ExportJSON, OutPath: filepath.Join(dir, "missing", "out.json")},
			errMsg: "destination write failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			err := Export(ctx, tt.cfg, sampleTable(), &log)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, log.String(), tt.wantLog)
			_, err = os.Stat(tt.cfg.OutPath)
			assert.NoError(t, err)
		})
	}
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"readings"`, quoteIdent("readings"))
	assert.Equal(t, `"a ""b"""`, quoteIdent(`a "b"`))
}
