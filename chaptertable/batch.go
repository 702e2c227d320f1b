package chaptertable

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadMany loads multiple chapter files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any
// file fails to load, the first error is returned and the partial
// results are discarded.
//
// Example:
//
//	tables, err := chaptertable.LoadMany(ctx, paths...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, table := range tables {
//	    fmt.Printf("%s: %d chapters\n", paths[i], table.Len())
//	}
func LoadMany(ctx context.Context, paths ...string) ([]*Table, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Table, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			table, err := Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = table
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
