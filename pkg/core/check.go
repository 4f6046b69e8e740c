package core

import (
	"fmt"

	"github.com/arthur-debert/vibesync/pkg/adapters"
	"github.com/arthur-debert/vibesync/pkg/compare"
	"github.com/arthur-debert/vibesync/pkg/config"
	"github.com/arthur-debert/vibesync/pkg/dispatcher"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/logging"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// CheckOptions contains options for Check
type CheckOptions struct {
	ConfigPath string
	FileSystem types.FS
	Overrides  map[string]interface{}
	// Verbose records a narration of the run in CheckResult.Narration
	Verbose bool
}

// DestinationStatus is the check outcome for one destination
type DestinationStatus struct {
	Destination types.ResolvedArtifact
	Adapter     string
	Result      compare.Result
}

// CheckResult collects the status of every destination, in order
type CheckResult struct {
	Config    *config.Config
	Source    types.ResolvedArtifact
	Statuses  []DestinationStatus
	Narration []string
}

// AllInSync reports whether every destination matched the source
func (r *CheckResult) AllInSync() bool {
	for _, s := range r.Statuses {
		if !s.Result.InSync {
			return false
		}
	}
	return true
}

// OutOfSync returns the destinations that did not match
func (r *CheckResult) OutOfSync() []DestinationStatus {
	var out []DestinationStatus
	for _, s := range r.Statuses {
		if !s.Result.InSync {
			out = append(out, s)
		}
	}
	return out
}

// Err returns an ErrOutOfSync error naming the drifted destinations, or nil
func (r *CheckResult) Err() error {
	drifted := r.OutOfSync()
	if len(drifted) == 0 {
		return nil
	}
	names := make([]string, len(drifted))
	for i, s := range drifted {
		names[i] = s.Destination.DisplayName()
	}
	return errors.Newf(errors.ErrOutOfSync, "%d of %d destinations out of sync", len(drifted), len(r.Statuses)).
		WithDetail("destinations", names)
}

// Check compares every configured destination against the source without
// touching the filesystem
func Check(opts CheckOptions) (*CheckResult, error) {
	logger := logging.GetLogger("core.check")
	fs := defaultFS(opts.FileSystem)

	run, err := load(fs, opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		Config: run.config,
		Source: run.resolved.Source,
	}
	narrate := func(format string, args ...interface{}) {
		if opts.Verbose {
			result.Narration = append(result.Narration, fmt.Sprintf(format, args...))
		}
	}

	narrate("Loaded configuration from %s", run.config.Path)
	narrate("Source: %s", result.Source)

	d := dispatcher.NewDefault(fs, run.ignored()...)
	err = d.Each(result.Source, run.resolved.Destinations, func(dst types.ResolvedArtifact, a adapters.Adapter) error {
		narrate("Checking sync for %s to %s", result.Source.DisplayName(), dst.DisplayName())

		done := logging.LogOperationStart(logger, "check")
		res, err := a.Check(result.Source, dst)
		done()
		if err != nil {
			return fmt.Errorf("checking %s: %w", dst.DisplayName(), err)
		}

		logger.Debug().
			Str("destination", dst.String()).
			Str("adapter", a.Name()).
			Bool("inSync", res.InSync).
			Str("reason", string(res.Reason)).
			Str("path", res.Path).
			Msg("Destination checked")

		narrate("  %s: %s", dst.DisplayName(), res)
		result.Statuses = append(result.Statuses, DestinationStatus{
			Destination: dst,
			Adapter:     a.Name(),
			Result:      res,
		})
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}
