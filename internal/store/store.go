// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store loads extracted or merged tables into a SQLite database and
// exports them as YAML or JSON documents.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// Store manages one SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the SQLite database at path, creating its parent
// directory if needed.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("database path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, types.NewSourceError(types.ErrDestinationWrite, path, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, types.NewSourceError(types.ErrDestinationWrite, path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WriteTable replaces table name with the contents of t: one TEXT column per
// header field, rows in order. It returns the number of rows inserted.
func (s *Store) WriteTable(ctx context.Context, name string, t types.Table) (n int, err error) {
	if name == "" {
		return 0, errors.New("table name is required")
	}
	if len(t.Header) == 0 {
		return 0, fmt.Errorf("table %q has no columns", name)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return 0, fmt.Errorf("dropping table %q: %w", name, err)
	}

	cols := make([]string, len(t.Header))
	marks := make([]string, len(t.Header))
	for i, h := range t.Header {
		cols[i] = quoteIdent(h) + " TEXT"
		marks[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(cols, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return 0, fmt.Errorf("creating table %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(name), strings.Join(marks, ", ")))
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Header))
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return 0, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(t.Header))
		}
		for j, v := range row {
			args[j] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("inserting row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(t.Rows), nil
}

// ReadTable returns the contents of table name in insertion order.
func (s *Store) ReadTable(ctx context.Context, name string) (types.Table, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY rowid", quoteIdent(name)))
	if err != nil {
		return types.Table{}, fmt.Errorf("querying table %q: %w", name, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return types.Table{}, fmt.Errorf("reading columns: %w", err)
	}

	t := types.Table{Header: header}
	vals := make([]sql.NullString, len(header))
	ptrs := make([]any, len(header))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return types.Table{}, fmt.Errorf("scanning row: %w", err)
		}
		row := make([]string, len(header))
		for i, v := range vals {
			row[i] = v.String
		}
		t.Rows = append(t.Rows, row)
	}
	return t, rows.Err()
}

// quoteIdent quotes a SQL identifier, doubling embedded quotes.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
