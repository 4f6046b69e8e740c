package filesystem

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/vibesync/pkg/types"
)

// maxConcurrentReads bounds the fan-out of ReadAll
const maxConcurrentReads = 8

// ReadAll reads paths concurrently and returns their contents in input order.
// The first read error cancels nothing already in flight but is the one returned.
func ReadAll(fsys types.FS, paths []string) ([]string, error) {
	contents := make([]string, len(paths))

	var g errgroup.Group
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			data, err := fsys.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			contents[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}
