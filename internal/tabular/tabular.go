// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular reads and writes comma-delimited tables with a header row.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// WriteFile writes t to path, header first, replacing any existing file.
// Every row must be exactly as wide as the header.
func WriteFile(path string, t types.Table) (err error) {
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return types.NewSourceError(types.ErrDestinationWrite, path,
				fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(t.Header)))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return types.NewSourceError(types.ErrDestinationWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = types.NewSourceError(types.ErrDestinationWrite, path, cerr)
		}
	}()

	if err := Write(f, t); err != nil {
		return types.NewSourceError(types.ErrDestinationWrite, path, err)
	}
	return nil
}

// Write encodes t to w without any width checks.
func Write(w io.Writer, t types.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return nil
}

// ReadFile loads the table at path. A missing file yields ErrSourceNotFound;
// a file that cannot be parsed yields ErrMalformedSource.
func ReadFile(path string) (types.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Table{}, types.NewSourceError(types.ErrSourceNotFound, path, nil)
		}
		return types.Table{}, types.NewSourceError(types.ErrMalformedSource, path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return types.Table{}, types.NewSourceError(types.ErrMalformedSource, path, err)
	}
	return t, nil
}

// Read parses a header row followed by data rows. Rows narrower than the
// header are padded with empty fields; wider rows are an error. Repeated
// header names get a ".N" suffix.
//
// A leading byte order mark is consumed: UTF-8 files saved by spreadsheet
// tools keep their first header name intact, and UTF-16 files are decoded.
// Input without a BOM is read unchanged.
func Read(r io.Reader) (types.Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return types.Table{}, errors.New("no header row")
	}
	if err != nil {
		return types.Table{}, fmt.Errorf("reading header: %w", err)
	}

	t := types.Table{Header: dedupeHeader(header)}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.Table{}, fmt.Errorf("reading row: %w", err)
		}
		if len(record) > len(t.Header) {
			line, _ := cr.FieldPos(0)
			return types.Table{}, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(t.Header), len(record))
		}
		if len(record) < len(t.Header) {
			padded := make([]string, len(t.Header))
			copy(padded, record)
			record = padded
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// dedupeHeader renames repeated names to name.1, name.2, ... so that every
// field can be addressed by name.
func dedupeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	taken := make(map[string]bool, len(header))
	for _, h := range header {
		taken[h] = true
	}
	for i, h := range header {
		n, dup := seen[h]
		if !dup {
			seen[h] = 1
			out[i] = h
			continue
		}
		name := h + "." + strconv.Itoa(n)
		for taken[name] {
			n++
			name = h + "." + strconv.Itoa(n)
		}
		seen[h] = n + 1
		taken[name] = true
		out[i] = name
	}
	return out
}
