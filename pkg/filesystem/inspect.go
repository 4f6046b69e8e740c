package filesystem

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/arthur-debert/vibesync/pkg/types"
)

// Presence is the outcome of probing a path. Absent is a regular result, not
// an error: callers must decide explicitly what a missing path means to them.
type Presence int

const (
	Absent Presence = iota
	IsFile
	IsDir
)

// String returns a human-readable presence name
func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case IsFile:
		return "file"
	case IsDir:
		return "directory"
	default:
		return "unknown"
	}
}

// Exists reports whether the path was found at all
func (p Presence) Exists() bool {
	return p != Absent
}

// Inspect stats path and classifies it. A path that does not exist, or whose
// parent is a regular file, is Absent. Any other stat failure is returned.
func Inspect(fsys types.FS, path string) (Presence, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return Absent, nil
		}
		return Absent, err
	}
	if info.IsDir() {
		return IsDir, nil
	}
	return IsFile, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
