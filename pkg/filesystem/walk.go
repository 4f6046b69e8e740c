package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/vibesync/pkg/types"
)

// ListFiles returns every regular file under root, depth-first, in the order
// ReadDir yields entries. Paths are root-joined. Both the OS and the afero
// backends return entries sorted by name, so within a directory the order is
// lexical; ListFiles itself does not sort.
func ListFiles(fsys types.FS, root string) ([]string, error) {
	var files []string
	if err := listInto(fsys, root, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func listInto(fsys types.FS, dir string, files *[]string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := listInto(fsys, path, files); err != nil {
				return err
			}
			continue
		}
		*files = append(*files, path)
	}
	return nil
}

// RelativeFiles lists files under root as slash-separated paths relative to root
func RelativeFiles(fsys types.FS, root string) ([]string, error) {
	files, err := ListFiles(fsys, root)
	if err != nil {
		return nil, err
	}
	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", f, err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel, nil
}
