package compare

import (
	"path"
	"strings"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/errors"
)

// DirOptions parameterizes directory equality. All functions must be pure.
type DirOptions struct {
	// Filter keeps a source file when it returns true. Paths are slash-separated
	// and relative to the source root. Nil keeps everything.
	Filter func(rel string) bool
	// Rename maps a file name (never a directory segment). Nil keeps the name.
	Rename func(name string) string
	// Transform returns the content transform for a source file name, or nil
	Transform func(name string) actions.ContentTransform
	// Shadowed lists destination sub-paths owned by someone else
	Shadowed []string
}

// Pair links a source-relative path to its expected destination-relative path
type Pair struct {
	Src  string
	Dest string
}

// Expand applies filter and rename to source-relative paths, in order.
// Two sources landing on one destination path, or a source landing inside a
// shadowed sub-path, is a configuration error.
func Expand(files []string, opts DirOptions) ([]Pair, error) {
	pairs := make([]Pair, 0, len(files))
	seen := make(map[string]string, len(files))

	for _, rel := range files {
		if opts.Filter != nil && !opts.Filter(rel) {
			continue
		}
		dest := RenamePath(rel, opts.Rename)
		if prev, dup := seen[dest]; dup {
			return nil, errors.Newf(errors.ErrMappingCollision,
				"%s and %s both map to %s", prev, rel, dest).
				WithDetail("destination", dest)
		}
		if opts.IsShadowed(dest) {
			return nil, errors.Newf(errors.ErrMappingCollision,
				"%s maps to %s which belongs to another segment", rel, dest).
				WithDetail("destination", dest)
		}
		seen[dest] = rel
		pairs = append(pairs, Pair{Src: rel, Dest: dest})
	}
	return pairs, nil
}

// RenamePath applies rename to the last element of a slash-separated path
func RenamePath(rel string, rename func(string) string) string {
	if rename == nil {
		return rel
	}
	dir, name := path.Split(rel)
	return dir + rename(name)
}

// TransformFor resolves the content transform of a source file
func (o DirOptions) TransformFor(rel string) actions.ContentTransform {
	if o.Transform == nil {
		return nil
	}
	return o.Transform(path.Base(rel))
}

// IsShadowed reports whether a destination-relative path belongs to a shadowed sub-path
func (o DirOptions) IsShadowed(rel string) bool {
	for _, s := range o.Shadowed {
		if s == "" {
			continue
		}
		if rel == s || strings.HasPrefix(rel, s+"/") {
			return true
		}
	}
	return false
}
