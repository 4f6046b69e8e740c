package executor

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/logging"
	"github.com/arthur-debert/vibesync/pkg/types"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Options contains configuration for the executor
type Options struct {
	Logger zerolog.Logger
	// Filesystem operations interface for testing
	FS types.FS
}

// Result records the outcome of one action
type Result struct {
	Action   actions.Action
	Success  bool
	Skipped  bool
	Message  string
	Error    error
	Duration time.Duration
}

// Executor applies plans. It holds no state between calls.
type Executor struct {
	logger zerolog.Logger
	fs     types.FS
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	return &Executor{
		logger: logger,
		fs:     fsys,
	}
}

// Execute runs plan in order. It returns the results of every action attempted,
// including the failed one, and the first error encountered.
func (e *Executor) Execute(plan []actions.Action) ([]Result, error) {
	done := logging.LogOperationStart(e.logger, "execute")
	defer done()

	results := make([]Result, 0, len(plan))
	for i, action := range plan {
		result := e.executeAction(action)
		results = append(results, result)
		if result.Error != nil {
			return results, errors.Wrapf(result.Error, errors.ErrActionExecute,
				"action %d of %d failed (%s)", i+1, len(plan), action).
				WithDetail("action", action.String())
		}
	}
	return results, nil
}

func (e *Executor) executeAction(action actions.Action) Result {
	start := time.Now()

	e.logger.Debug().
		Str("kind", string(action.Kind())).
		Str("target", action.Target()).
		Msg("Executing action")

	result := Result{Action: action}
	skipped, err := e.apply(action)
	result.Duration = time.Since(start)

	if err != nil {
		e.logger.Error().
			Err(err).
			Str("action", action.String()).
			Msg("Action execution failed")
		result.Error = err
		return result
	}

	result.Success = true
	if skipped {
		result.Skipped = true
		result.Message = "destination exists, not overwritten"
	}

	e.logger.Debug().
		Str("action", action.String()).
		Bool("skipped", skipped).
		Dur("duration", result.Duration).
		Msg("Action executed successfully")

	return result
}

func (e *Executor) apply(action actions.Action) (bool, error) {
	if err := action.Validate(); err != nil {
		return false, err
	}

	switch a := action.(type) {
	case actions.Mkdir:
		return false, e.mkdir(a.Directory)
	case actions.Copy:
		return e.copy(a)
	case actions.Merge:
		return false, e.merge(a)
	case actions.Transform:
		return false, e.transform(a)
	default:
		return false, errors.Newf(errors.ErrActionInvalid, "unknown action type %T", action)
	}
}

func (e *Executor) mkdir(dir string) error {
	if err := e.fs.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}
	return nil
}

func (e *Executor) copy(a actions.Copy) (bool, error) {
	if !a.Overwrite {
		presence, err := filesystem.Inspect(e.fs, a.Destination)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", a.Destination)
		}
		if presence.Exists() {
			return true, nil
		}
	}

	presence, err := filesystem.Inspect(e.fs, a.Source)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", a.Source)
	}

	switch presence {
	case filesystem.Absent:
		return false, errors.Newf(errors.ErrNotFound, "copy source %s does not exist", a.Source)
	case filesystem.IsDir:
		if !a.Recursive {
			return false, errors.Newf(errors.ErrActionInvalid, "copy source %s is a directory but copy is not recursive", a.Source)
		}
		return false, e.copyTree(a.Source, a.Destination, filepath.Clean(a.Destination))
	default:
		return false, e.copyFile(a.Source, a.Destination)
	}
}

// copyTree replicates src into dst. The copy root is never descended into, so
// a destination nested in its own source terminates.
func (e *Executor) copyTree(src, dst, root string) error {
	if err := e.mkdir(dst); err != nil {
		return err
	}

	entries, err := e.fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read directory %s", src)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if from == root {
			continue
		}
		if entry.IsDir() {
			if err := e.copyTree(from, to, root); err != nil {
				return err
			}
			continue
		}
		if err := e.copyFile(from, to); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) copyFile(src, dst string) error {
	data, err := e.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", src)
	}
	return e.write(dst, data)
}

func (e *Executor) merge(a actions.Merge) error {
	contents, err := filesystem.ReadAll(e.fs, a.Sources)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to read merge sources")
	}
	return e.write(a.Destination, []byte(actions.MergeContents(contents)))
}

func (e *Executor) transform(a actions.Transform) error {
	data, err := e.fs.ReadFile(a.Source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", a.Source)
	}
	return e.write(a.Destination, []byte(a.Transform(string(data))))
}

func (e *Executor) write(path string, data []byte) error {
	if err := e.fs.WriteFile(path, data, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

// Summary returns a short human-readable count of the results
func Summary(results []Result) string {
	var applied, skipped int
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
		case r.Success:
			applied++
		}
	}
	if skipped == 0 {
		return fmt.Sprintf("%d actions applied", applied)
	}
	return fmt.Sprintf("%d actions applied, %d skipped", applied, skipped)
}
