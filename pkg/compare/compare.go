package compare

import (
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/internal/hashutil"
	"github.com/arthur-debert/vibesync/pkg/logging"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// maxConcurrentHashes bounds the read fan-out of one directory comparison
const maxConcurrentHashes = 8

// Comparator performs read-only equality checks through an FS
type Comparator struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Comparator reading through fsys
func New(fsys types.FS) *Comparator {
	return &Comparator{
		fs:     fsys,
		logger: logging.GetLogger("compare"),
	}
}

// Files compares a source file, after transform, with a destination file.
// Both absent is convergent.
func (c *Comparator) Files(src, dst string, transform actions.ContentTransform) (Result, error) {
	srcPresence, err := c.inspect(src)
	if err != nil {
		return Result{}, err
	}
	dstPresence, err := c.inspect(dst)
	if err != nil {
		return Result{}, err
	}

	switch {
	case srcPresence == filesystem.Absent && dstPresence == filesystem.Absent:
		return InSync(), nil
	case srcPresence == filesystem.Absent:
		return Drift(ReasonUnexpected, dst), nil
	case dstPresence == filesystem.Absent:
		return Drift(ReasonMissing, dst), nil
	case srcPresence == filesystem.IsDir:
		return Result{}, errors.Newf(errors.ErrInvalidInput, "%s is a directory, expected a file", src)
	case dstPresence == filesystem.IsDir:
		return Drift(ReasonTypeMismatch, dst), nil
	}

	equal, err := c.sameContent(src, dst, transform)
	if err != nil {
		return Result{}, err
	}
	if !equal {
		return Drift(ReasonContent, dst), nil
	}
	return InSync(), nil
}

// Content compares in-memory data with the file at path. The data is never
// written anywhere; only its hash is compared.
func (c *Comparator) Content(data []byte, path string) (Result, error) {
	presence, err := c.inspect(path)
	if err != nil {
		return Result{}, err
	}
	switch presence {
	case filesystem.Absent:
		return Drift(ReasonMissing, path), nil
	case filesystem.IsDir:
		return Drift(ReasonTypeMismatch, path), nil
	}

	dstSum, err := hashutil.CalculateFileChecksum(c.fs, path)
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to hash %s", path)
	}
	if hashutil.Checksum(data) != dstSum {
		return Drift(ReasonContent, path), nil
	}
	return InSync(), nil
}

// Dirs compares two directory trees under opts.
//
// The destination converges when it holds exactly the expected files, each
// with the expected content. Destination files under opts.Shadowed are
// ignored. Both roots absent is convergent; a missing destination root for an
// existing source is not.
func (c *Comparator) Dirs(src, dst string, opts DirOptions) (Result, error) {
	srcPresence, err := c.inspect(src)
	if err != nil {
		return Result{}, err
	}
	dstPresence, err := c.inspect(dst)
	if err != nil {
		return Result{}, err
	}

	switch {
	case srcPresence == filesystem.Absent && dstPresence == filesystem.Absent:
		return InSync(), nil
	case srcPresence == filesystem.IsFile:
		return Result{}, errors.Newf(errors.ErrInvalidInput, "%s is a file, expected a directory", src)
	case dstPresence == filesystem.IsFile:
		return Drift(ReasonTypeMismatch, dst), nil
	case srcPresence == filesystem.Absent:
		return Drift(ReasonUnexpected, dst), nil
	case dstPresence == filesystem.Absent:
		return Drift(ReasonMissing, dst), nil
	}

	srcFiles, err := filesystem.RelativeFiles(c.fs, src)
	if err != nil {
		return Result{}, errors.Wrap(err, errors.ErrFileAccess, "failed to list source")
	}
	pairs, err := Expand(srcFiles, opts)
	if err != nil {
		return Result{}, err
	}
	dstFiles, err := filesystem.RelativeFiles(c.fs, dst)
	if err != nil {
		return Result{}, errors.Wrap(err, errors.ErrFileAccess, "failed to list destination")
	}

	expected := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		expected[p.Dest] = true
	}

	present := make(map[string]bool, len(dstFiles))
	sort.Strings(dstFiles)
	for _, rel := range dstFiles {
		if opts.IsShadowed(rel) {
			continue
		}
		if !expected[rel] {
			c.logger.Debug().Str("path", rel).Msg("Unexpected destination file")
			return Drift(ReasonUnexpected, join(dst, rel)), nil
		}
		present[rel] = true
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Dest < pairs[j].Dest })
	for _, p := range pairs {
		if !present[p.Dest] {
			c.logger.Debug().Str("path", p.Dest).Msg("Expected destination file missing")
			return Drift(ReasonMissing, join(dst, p.Dest)), nil
		}
	}

	return c.compareContents(src, dst, pairs, opts)
}

// compareContents hashes matched pairs concurrently and reports the first
// mismatch in destination path order
func (c *Comparator) compareContents(src, dst string, pairs []Pair, opts DirOptions) (Result, error) {
	equal := make([]bool, len(pairs))

	var g errgroup.Group
	g.SetLimit(maxConcurrentHashes)
	for i, p := range pairs {
		g.Go(func() error {
			ok, err := c.sameContent(join(src, p.Src), join(dst, p.Dest), opts.TransformFor(p.Src))
			if err != nil {
				return err
			}
			equal[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	for i, p := range pairs {
		if !equal[i] {
			return Drift(ReasonContent, join(dst, p.Dest)), nil
		}
	}
	return InSync(), nil
}

func (c *Comparator) sameContent(src, dst string, transform actions.ContentTransform) (bool, error) {
	srcSum, err := hashutil.CalculateTransformedChecksum(c.fs, src, transform)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to hash %s", src)
	}
	dstSum, err := hashutil.CalculateFileChecksum(c.fs, dst)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to hash %s", dst)
	}
	return srcSum == dstSum, nil
}

func (c *Comparator) inspect(path string) (filesystem.Presence, error) {
	presence, err := filesystem.Inspect(c.fs, path)
	if err != nil {
		return filesystem.Absent, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	return presence, nil
}

func join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
