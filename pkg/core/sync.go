package core

import (
	"fmt"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/adapters"
	"github.com/arthur-debert/vibesync/pkg/config"
	"github.com/arthur-debert/vibesync/pkg/dispatcher"
	"github.com/arthur-debert/vibesync/pkg/executor"
	"github.com/arthur-debert/vibesync/pkg/logging"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// SyncOptions contains options for Sync
type SyncOptions struct {
	ConfigPath string
	FileSystem types.FS
	// Overrides replace config keys, see config.LoadOptions
	Overrides map[string]interface{}
}

// DestinationSync is what happened to one destination
type DestinationSync struct {
	Destination types.ResolvedArtifact
	Adapter     string
	Plan        []actions.Action
	Results     []executor.Result
}

// SyncResult collects the destinations handled by Sync, in order
type SyncResult struct {
	Config       *config.Config
	Source       types.ResolvedArtifact
	Destinations []DestinationSync
}

// Sync makes every configured destination match the source. On failure the
// result holds the destinations processed so far, including the failed one.
func Sync(opts SyncOptions) (*SyncResult, error) {
	logger := logging.GetLogger("core.sync")
	fs := defaultFS(opts.FileSystem)

	run, err := load(fs, opts.ConfigPath, opts.Overrides)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{
		Config: run.config,
		Source: run.resolved.Source,
	}

	logger.Info().
		Str("source", result.Source.String()).
		Int("destinations", len(run.resolved.Destinations)).
		Msg("Starting sync")

	exec := executor.New(executor.Options{
		Logger: logging.GetLogger("executor"),
		FS:     fs,
	})

	d := dispatcher.NewDefault(fs, run.ignored()...)
	err = d.Each(result.Source, run.resolved.Destinations, func(dst types.ResolvedArtifact, a adapters.Adapter) error {
		entry := DestinationSync{Destination: dst, Adapter: a.Name()}

		done := logging.LogOperationStart(logger, "plan")
		plan, err := a.Plan(result.Source, dst)
		done()
		if err != nil {
			result.Destinations = append(result.Destinations, entry)
			return fmt.Errorf("planning %s: %w", dst.DisplayName(), err)
		}
		entry.Plan = plan

		logger.Debug().
			Str("destination", dst.String()).
			Str("adapter", a.Name()).
			Strs("plan", actions.Describe(plan)).
			Msg("Plan built")

		entry.Results, err = exec.Execute(plan)
		result.Destinations = append(result.Destinations, entry)
		if err != nil {
			return fmt.Errorf("syncing %s: %w", dst.DisplayName(), err)
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Sync aborted")
		return result, err
	}

	logger.Info().Int("destinations", len(result.Destinations)).Msg("Sync completed")
	return result, nil
}
