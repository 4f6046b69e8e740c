package adapters

import (
	"path"
	"path/filepath"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/compare"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// SubdirMapping maps one structural segment of a source onto a destination.
//
// Src and Dest are slash-separated fragments relative to the artifacts; ""
// is the artifact root. Rename acts on file names only. Filter sees paths
// relative to Src. Transform returns the content rewrite for a source file
// name, nil meaning a plain copy. Shadowed lists sub-paths of Dest owned by
// sibling mappings. All functions must be pure.
type SubdirMapping struct {
	Segment   string
	Src       string
	Dest      string
	Rename    func(name string) string
	Filter    func(rel string) bool
	Transform func(name string) actions.ContentTransform
	Shadowed  []string
}

func (m SubdirMapping) options() compare.DirOptions {
	return compare.DirOptions{
		Filter:    m.Filter,
		Rename:    m.Rename,
		Transform: m.Transform,
		Shadowed:  m.Shadowed,
	}
}

func (m SubdirMapping) rename(name string) string {
	if m.Rename == nil {
		return name
	}
	return m.Rename(name)
}

func (m SubdirMapping) transform(name string) actions.ContentTransform {
	if m.Transform == nil {
		return nil
	}
	return m.Transform(name)
}

// mappingsFor computes the table for a pair. A single-file source only feeds
// the rules segment.
func mappingsFor(src, dst types.ResolvedArtifact) []SubdirMapping {
	all := buildMappings(layoutFor(src), layoutFor(dst))
	if !src.IsFile() {
		return all
	}
	for _, m := range all {
		if m.Segment == SegmentRules {
			return []SubdirMapping{m}
		}
	}
	return nil
}

// segmentSource is what a mapping reads from for one call
type segmentSource struct {
	path     string
	presence filesystem.Presence
	// name is the file name used for rename and transform lookups
	name string
}

func resolveSegment(fs types.FS, src types.ResolvedArtifact, m SubdirMapping) (segmentSource, error) {
	if src.IsFile() {
		presence, err := filesystem.Inspect(fs, src.Path)
		if err != nil {
			return segmentSource{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", src.Path)
		}
		return segmentSource{path: src.Path, presence: presence, name: LandingFileName}, nil
	}

	p := join(src.Path, m.Src)
	presence, err := filesystem.Inspect(fs, p)
	if err != nil {
		return segmentSource{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", p)
	}
	return segmentSource{path: p, presence: presence, name: filepath.Base(p)}, nil
}

// segmentOptions is the mapping's comparison options with the excluded paths
// filtered out of the segment listing
func segmentOptions(m SubdirMapping, segPath string, excluded []string) compare.DirOptions {
	opts := m.options()
	opts.Filter = allOf(opts.Filter, excludeUnder(segPath, excluded))
	return opts
}

// planMappings emits, per mapping in order, a Mkdir for the destination
// segment followed by one Copy or Transform per retained file. Nothing on or
// below an excluded path is read from the source.
func planMappings(fs types.FS, src, dst types.ResolvedArtifact, mappings []SubdirMapping, excluded []string) ([]actions.Action, error) {
	var plan []actions.Action

	for _, m := range mappings {
		seg, err := resolveSegment(fs, src, m)
		if err != nil {
			return nil, err
		}
		destDir := join(dst.Path, m.Dest)

		switch seg.presence {
		case filesystem.Absent:
			continue
		case filesystem.IsFile:
			plan = append(plan,
				actions.Mkdir{Directory: destDir, Recursive: true},
				writeAction(seg.path, join(destDir, m.rename(seg.name)), m.transform(seg.name)),
			)
		case filesystem.IsDir:
			files, err := filesystem.RelativeFiles(fs, seg.path)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to list source segment")
			}
			pairs, err := compare.Expand(files, segmentOptions(m, seg.path, excluded))
			if err != nil {
				return nil, err
			}

			plan = append(plan, actions.Mkdir{Directory: destDir, Recursive: true})
			made := map[string]bool{".": true}
			for _, p := range pairs {
				if dir := path.Dir(p.Dest); !made[dir] {
					made[dir] = true
					plan = append(plan, actions.Mkdir{Directory: join(destDir, dir), Recursive: true})
				}
				plan = append(plan, writeAction(
					join(seg.path, p.Src),
					join(destDir, p.Dest),
					m.transform(path.Base(p.Src)),
				))
			}
		}
	}
	return plan, nil
}

// checkMappings walks the same mappings as planMappings and stops at the
// first one that is not in sync
func checkMappings(fs types.FS, cmp *compare.Comparator, src, dst types.ResolvedArtifact, mappings []SubdirMapping, excluded []string) (compare.Result, error) {
	for _, m := range mappings {
		seg, err := resolveSegment(fs, src, m)
		if err != nil {
			return compare.Result{}, err
		}
		destDir := join(dst.Path, m.Dest)

		var result compare.Result
		switch seg.presence {
		case filesystem.Absent:
			continue
		case filesystem.IsFile:
			result, err = cmp.Files(seg.path, join(destDir, m.rename(seg.name)), m.transform(seg.name))
		case filesystem.IsDir:
			result, err = cmp.Dirs(seg.path, destDir, segmentOptions(m, seg.path, excluded))
		}
		if err != nil {
			return compare.Result{}, err
		}
		if !result.InSync {
			return result, nil
		}
	}
	return compare.InSync(), nil
}

func writeAction(src, dst string, transform actions.ContentTransform) actions.Action {
	if transform == nil {
		return actions.Copy{Source: src, Destination: dst, Overwrite: true}
	}
	return actions.Transform{Source: src, Destination: dst, Transform: transform}
}

func join(root, rel string) string {
	if rel == "" {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
