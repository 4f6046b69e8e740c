package adapters

import (
	"path/filepath"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/compare"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// DirectoryToFileMerge concatenates every file of a source tree into one
// destination file
type DirectoryToFileMerge struct {
	fs     types.FS
	cmp    *compare.Comparator
	ignore []string
}

// NewDirectoryToFileMerge creates the merge adapter. Paths in ignore are
// never merged.
func NewDirectoryToFileMerge(fs types.FS, ignore ...string) *DirectoryToFileMerge {
	return &DirectoryToFileMerge{fs: fs, cmp: compare.New(fs), ignore: ignore}
}

func (a *DirectoryToFileMerge) Name() string { return "DirectoryToFileMerge" }

func (a *DirectoryToFileMerge) CanHandle(src, dst types.ResolvedArtifact) bool {
	return src.IsDirectory() && dst.IsFile()
}

// Plan merges in depth-first, directory-entry order. An empty tree plans
// nothing and leaves any existing destination alone.
func (a *DirectoryToFileMerge) Plan(src, dst types.ResolvedArtifact) ([]actions.Action, error) {
	files, err := a.sources(src, dst)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return []actions.Action{
		actions.Mkdir{Directory: filepath.Dir(dst.Path), Recursive: true},
		actions.Merge{Sources: files, Destination: dst.Path},
	}, nil
}

// Check hashes the merge in memory. With an empty tree the destination is in
// sync only when it is absent or empty.
func (a *DirectoryToFileMerge) Check(src, dst types.ResolvedArtifact) (compare.Result, error) {
	files, err := a.sources(src, dst)
	if err != nil {
		return compare.Result{}, err
	}

	if len(files) == 0 {
		return a.checkEmpty(dst.Path)
	}

	contents, err := filesystem.ReadAll(a.fs, files)
	if err != nil {
		return compare.Result{}, errors.Wrap(err, errors.ErrFileAccess, "failed to read merge sources")
	}
	return a.cmp.Content([]byte(actions.MergeContents(contents)), dst.Path)
}

func (a *DirectoryToFileMerge) checkEmpty(path string) (compare.Result, error) {
	presence, err := filesystem.Inspect(a.fs, path)
	if err != nil {
		return compare.Result{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	switch presence {
	case filesystem.Absent:
		return compare.InSync(), nil
	case filesystem.IsDir:
		return compare.Drift(compare.ReasonTypeMismatch, path), nil
	}

	info, err := a.fs.Stat(path)
	if err != nil {
		return compare.Result{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	if info.Size() == 0 {
		return compare.InSync(), nil
	}
	return compare.Drift(compare.ReasonUnexpected, path), nil
}

// sources lists the merge inputs. The destination file is left out, since a
// destination inside the source tree would otherwise be merged into itself.
func (a *DirectoryToFileMerge) sources(src, dst types.ResolvedArtifact) ([]string, error) {
	presence, err := filesystem.Inspect(a.fs, src.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", src.Path)
	}
	if presence == filesystem.Absent {
		return nil, nil
	}
	files, err := filesystem.ListFiles(a.fs, src.Path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to list merge sources")
	}

	keep := excludeUnder(src.Path, excludedFor(dst, a.ignore))
	if keep == nil {
		return files, nil
	}
	kept := files[:0]
	for _, f := range files {
		rel, err := filepath.Rel(src.Path, f)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "%s is not under %s", f, src.Path)
		}
		if keep(filepath.ToSlash(rel)) {
			kept = append(kept, f)
		}
	}
	return kept, nil
}
