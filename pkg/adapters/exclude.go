package adapters

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/vibesync/pkg/types"
)

// excludedFor lists the paths a source listing must never pick up for dst:
// the destination itself plus the adapter's ignore list. A destination that
// lives inside the source would otherwise be read back as input.
func excludedFor(dst types.ResolvedArtifact, ignore []string) []string {
	return append([]string{dst.Path}, ignore...)
}

// excludeUnder returns a filter over slash-separated paths relative to root
// that drops everything on or below one of the excluded paths. Excluded paths
// outside root, or equal to it, do not apply. Nil when nothing applies.
func excludeUnder(root string, excluded []string) func(rel string) bool {
	var rels []string
	for _, p := range excluded {
		rel, err := filepath.Rel(root, p)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return excludeNested(rels)
}

// allOf keeps a path only when every non-nil filter keeps it
func allOf(filters ...func(string) bool) func(string) bool {
	var active []func(string) bool
	for _, f := range filters {
		if f != nil {
			active = append(active, f)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(rel string) bool {
		for _, f := range active {
			if !f(rel) {
				return false
			}
		}
		return true
	}
}
