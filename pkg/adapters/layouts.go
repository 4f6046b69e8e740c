package adapters

import (
	"path"
	"strings"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/presets"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// Canonical segment names
const (
	SegmentRules     = "rules"
	SegmentWorkflows = "workflows"
)

var segmentOrder = []string{SegmentRules, SegmentWorkflows}

// layout describes where a tool keeps each canonical segment and how it names
// and wraps documents. Nil functions mean identity.
type layout struct {
	// segments maps a canonical segment to its path inside the artifact.
	// "" is the artifact root.
	segments map[string]string
	toName   func(string) string
	fromName func(string) string
	wrap     actions.ContentTransform
	unwrap   actions.ContentTransform
}

var canonicalLayout = layout{
	segments: map[string]string{
		SegmentRules:     "rules",
		SegmentWorkflows: "workflows",
	},
}

var toolLayouts = map[string]layout{
	presets.Cline: {
		segments: map[string]string{
			SegmentRules:     "",
			SegmentWorkflows: "workflows",
		},
	},
	presets.KiloCode: canonicalLayout,
	presets.RooCode:  canonicalLayout,
	presets.Cursor: {
		segments: map[string]string{
			SegmentRules: "rules",
		},
		toName:   toMDC,
		fromName: fromMDC,
		wrap:     wrapCursor,
		unwrap:   unwrapCursor,
	},
}

// layoutFor returns the tool's layout, or the canonical one for unknown names
// and custom paths
func layoutFor(a types.ResolvedArtifact) layout {
	if l, ok := toolLayouts[a.Name]; ok {
		return l
	}
	return canonicalLayout
}

// buildMappings computes the mapping table for a pair of layouts. Only
// segments present on both sides produce a mapping.
func buildMappings(src, dst layout) []SubdirMapping {
	var mappings []SubdirMapping
	for _, seg := range segmentOrder {
		srcPath, ok := src.segments[seg]
		if !ok {
			continue
		}
		dstPath, ok := dst.segments[seg]
		if !ok {
			continue
		}
		mappings = append(mappings, SubdirMapping{
			Segment:   seg,
			Src:       srcPath,
			Dest:      dstPath,
			Rename:    composeRename(src.fromName, dst.toName),
			Filter:    excludeNested(nestedSiblings(src, seg)),
			Transform: composeTransform(src, dst),
			Shadowed:  nestedSiblings(dst, seg),
		})
	}
	return mappings
}

// nestedSiblings lists the other segments of l that live inside seg, relative
// to seg's path
func nestedSiblings(l layout, seg string) []string {
	base := l.segments[seg]
	var nested []string
	for _, other := range segmentOrder {
		if other == seg {
			continue
		}
		p, ok := l.segments[other]
		if !ok {
			continue
		}
		if rel, inside := within(base, p); inside {
			nested = append(nested, rel)
		}
	}
	return nested
}

// within reports whether p lies strictly inside base and returns p relative to base
func within(base, p string) (string, bool) {
	if base == "" {
		return p, p != ""
	}
	if strings.HasPrefix(p, base+"/") {
		return strings.TrimPrefix(p, base+"/"), true
	}
	return "", false
}

func excludeNested(nested []string) func(string) bool {
	if len(nested) == 0 {
		return nil
	}
	return func(rel string) bool {
		for _, n := range nested {
			if rel == n || strings.HasPrefix(rel, n+"/") {
				return false
			}
		}
		return true
	}
}

func composeRename(from, to func(string) string) func(string) string {
	if from == nil && to == nil {
		return nil
	}
	return func(name string) string {
		if from != nil {
			name = from(name)
		}
		if to != nil {
			name = to(name)
		}
		return name
	}
}

// composeTransform builds dst.wrap after src.unwrap for markdown documents.
// Other files are copied untouched.
func composeTransform(src, dst layout) func(string) actions.ContentTransform {
	if src.unwrap == nil && dst.wrap == nil {
		return nil
	}
	return func(name string) actions.ContentTransform {
		canonical := name
		if src.fromName != nil {
			canonical = src.fromName(name)
		}
		if path.Ext(canonical) != ".md" {
			return nil
		}
		return func(content string) string {
			if src.unwrap != nil {
				content = src.unwrap(content)
			}
			if dst.wrap != nil {
				content = dst.wrap(content)
			}
			return content
		}
	}
}
