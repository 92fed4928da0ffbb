// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge combines several extraction outputs into one table.
// Columns are aligned by header name; rows keep file order and per-file order.
package merge

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/sensor-sheets/internal/tabular"
	"github.com/pdiddy/sensor-sheets/pkg/types"
)

// maxParallelLoads bounds concurrent file reads.
const maxParallelLoads = 4

// Loaded is a table read from one input path.
type Loaded struct {
	Path  string
	Table types.Table
}

// Summary holds the outcome of a merge run.
type Summary struct {
	Loaded  int
	Missing []string
	Rows    int
	Written bool
}

// LoadAll reads every path that exists. Missing paths are reported on w and
// returned in missing; an existing file that cannot be parsed aborts the load.
// Files are read concurrently but the result follows the order of paths.
func LoadAll(ctx context.Context, paths []string, w io.Writer) (loaded []Loaded, missing []string, err error) {
	results := make([]*Loaded, len(paths))
	absent := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := tabular.ReadFile(path)
			if errors.Is(err, types.ErrSourceNotFound) {
				absent[i] = true
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = &Loaded{Path: path, Table: t}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("loading merge inputs: %w", err)
	}

	for i, path := range paths {
		if absent[i] {
			fmt.Fprintf(w, "warning: file not found: %s - skipping\n", path)
			missing = append(missing, path)
			continue
		}
		fmt.Fprintf(w, "read %s (%d rows)\n", path, results[i].Table.Len())
		loaded = append(loaded, *results[i])
	}
	return loaded, missing, nil
}

// Concat unions the tables by header name. The merged header lists every
// field in first-seen order; a row gets an empty value for fields its own
// table lacks. Rows are not reordered or deduplicated.
func Concat(tables []types.Table) types.Table {
	var merged types.Table
	index := make(map[string]int)
	for _, t := range tables {
		for _, h := range t.Header {
			if _, ok := index[h]; ok {
				continue
			}
			index[h] = len(merged.Header)
			merged.Header = append(merged.Header, h)
		}
	}

	for _, t := range tables {
		pos := make([]int, len(t.Header))
		for i, h := range t.Header {
			pos[i] = index[h]
		}
		for _, row := range t.Rows {
			out := make([]string, len(merged.Header))
			for i, v := range row {
				if i < len(pos) {
					out[pos[i]] = v
				}
			}
			merged.Rows = append(merged.Rows, out)
		}
	}
	return merged
}

// Run loads cfg.InputPaths, concatenates them and writes cfg.OutputPath.
// When no input could be loaded nothing is written.
func Run(ctx context.Context, cfg types.MergeConfig, w io.Writer) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid merge config: %w", err)
	}

	fmt.Fprintf(w, "merging %d files\n", len(cfg.InputPaths))

	loaded, missing, err := LoadAll(ctx, cfg.InputPaths, w)
	if err != nil {
		return Summary{Missing: missing}, err
	}

	summary := Summary{Loaded: len(loaded), Missing: missing}
	if len(loaded) == 0 {
		fmt.Fprintln(w, "\nno data was loaded; merged file not created")
		return summary, nil
	}

	tables := make([]types.Table, len(loaded))
	for i, l := range loaded {
		tables[i] = l.Table
	}
	merged := Concat(tables)

	if err := tabular.WriteFile(cfg.OutputPath, merged); err != nil {
		return summary, fmt.Errorf("writing merged output: %w", err)
	}
	summary.Rows = merged.Len()
	summary.Written = true

	fmt.Fprintf(w, "\nmerged %d files into %s (%d rows)\n", summary.Loaded, cfg.OutputPath, summary.Rows)
	return summary, nil
}
