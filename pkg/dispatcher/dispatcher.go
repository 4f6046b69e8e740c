// Package dispatcher selects the adapter for each (source, destination) pair.
// Adapters are consulted in a fixed order and the first one that accepts the
// pair wins, so the catch-all adapter has to come last.
package dispatcher

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/vibesync/pkg/adapters"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/logging"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// Dispatcher is an ordered, immutable adapter registry
type Dispatcher struct {
	adapters []adapters.Adapter
	logger   zerolog.Logger
}

// New creates a dispatcher over the given adapters, in priority order
func New(list ...adapters.Adapter) *Dispatcher {
	ordered := make([]adapters.Adapter, len(list))
	copy(ordered, list)
	return &Dispatcher{
		adapters: ordered,
		logger:   logging.GetLogger("dispatcher"),
	}
}

// NewDefault creates a dispatcher over the builtin adapters. Paths in ignore
// are never read as source content.
func NewDefault(fs types.FS, ignore ...string) *Dispatcher {
	return New(adapters.Builtin(fs, ignore...)...)
}

// Adapters returns the adapters in priority order
func (d *Dispatcher) Adapters() []adapters.Adapter {
	out := make([]adapters.Adapter, len(d.adapters))
	copy(out, d.adapters)
	return out
}

// Dispatch returns the first adapter accepting the pair
func (d *Dispatcher) Dispatch(src, dst types.ResolvedArtifact) (adapters.Adapter, error) {
	for _, a := range d.adapters {
		if a.CanHandle(src, dst) {
			d.logger.Debug().
				Str("adapter", a.Name()).
				Str("source", src.String()).
				Str("destination", dst.String()).
				Msg("Adapter selected")
			return a, nil
		}
	}
	return nil, errors.Newf(errors.ErrNoHandlerFound, "no adapter accepts %s -> %s", src, dst).
		WithDetail("source", src.Path).
		WithDetail("destination", dst.Path)
}

// Each dispatches every destination in order and calls fn with its adapter.
// The first error from dispatch or fn stops the walk.
func (d *Dispatcher) Each(src types.ResolvedArtifact, dests []types.ResolvedArtifact, fn func(dst types.ResolvedArtifact, a adapters.Adapter) error) error {
	for _, dst := range dests {
		a, err := d.Dispatch(src, dst)
		if err != nil {
			return err
		}
		if err := fn(dst, a); err != nil {
			return err
		}
	}
	return nil
}
