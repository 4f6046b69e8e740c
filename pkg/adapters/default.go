package adapters

import (
	"path/filepath"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/compare"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// Default is the catch-all adapter: a plain overwrite copy
type Default struct {
	fs     types.FS
	cmp    *compare.Comparator
	ignore []string
}

// NewDefault creates the fallback adapter. Paths in ignore are never copied
// out of a source directory.
func NewDefault(fs types.FS, ignore ...string) *Default {
	return &Default{fs: fs, cmp: compare.New(fs), ignore: ignore}
}

// wholeTree maps a directory onto a directory as is
var wholeTree = []SubdirMapping{{}}

func (a *Default) Name() string { return "Default" }

// CanHandle accepts every pair
func (a *Default) CanHandle(src, dst types.ResolvedArtifact) bool { return true }

func (a *Default) Plan(src, dst types.ResolvedArtifact) ([]actions.Action, error) {
	switch {
	case src.IsFile() && dst.IsFile():
		return []actions.Action{
			actions.Mkdir{Directory: filepath.Dir(dst.Path), Recursive: true},
			actions.Copy{Source: src.Path, Destination: dst.Path, Overwrite: true},
		}, nil
	case src.IsFile():
		return []actions.Action{
			actions.Mkdir{Directory: dst.Path, Recursive: true},
			actions.Copy{Source: src.Path, Destination: filepath.Join(dst.Path, LandingFileName), Overwrite: true},
		}, nil
	case !dst.IsFile():
		// part of the tree stays behind, so the files are copied one by one
		excluded := excludedFor(dst, a.ignore)
		if excludeUnder(src.Path, excluded) != nil {
			return planMappings(a.fs, src, dst, wholeTree, excluded)
		}
		return []actions.Action{
			actions.Mkdir{Directory: dst.Path, Recursive: true},
			actions.Copy{Source: src.Path, Destination: dst.Path, Recursive: true, Overwrite: true},
		}, nil
	default:
		return nil, unsupportedPair(src, dst)
	}
}

func (a *Default) Check(src, dst types.ResolvedArtifact) (compare.Result, error) {
	switch {
	case src.IsFile() && dst.IsFile():
		return a.cmp.Files(src.Path, dst.Path, nil)
	case src.IsFile():
		return a.cmp.Files(src.Path, filepath.Join(dst.Path, LandingFileName), nil)
	case !dst.IsFile():
		return checkMappings(a.fs, a.cmp, src, dst, wholeTree, excludedFor(dst, a.ignore))
	default:
		return compare.Result{}, unsupportedPair(src, dst)
	}
}

// directory to file is the merge adapter's job and never reaches here
// through the builtin order
func unsupportedPair(src, dst types.ResolvedArtifact) error {
	return errors.Newf(errors.ErrInvalidInput, "cannot copy directory %s onto file %s", src.Path, dst.Path).
		WithDetail("source", src.String()).
		WithDetail("destination", dst.String())
}
