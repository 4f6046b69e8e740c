package adapters

import (
	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/compare"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// LandingFileName is the file a single-file source becomes inside a directory
const LandingFileName = "vibesync.md"

// Adapter reconciles one family of destination conventions.
// Implementations are stateless and safe to reuse across calls.
type Adapter interface {
	// Name identifies the adapter in logs and check output
	Name() string
	// CanHandle must only look at the artifacts' name, path and type
	CanHandle(src, dst types.ResolvedArtifact) bool
	// Plan returns the ordered actions that make dst match src
	Plan(src, dst types.ResolvedArtifact) ([]actions.Action, error)
	// Check reports whether executing Plan would change nothing
	Check(src, dst types.ResolvedArtifact) (compare.Result, error)
}

// Builtin returns the adapters in dispatch order. Default accepts every pair
// and must stay last. Paths in ignore, typically the configuration file and
// every destination of the run, are never read as source content.
func Builtin(fs types.FS, ignore ...string) []Adapter {
	return []Adapter{
		NewDirectoryToFileMerge(fs, ignore...),
		NewClineSplit(fs, ignore...),
		NewCodeSplit(fs, ignore...),
		NewCursorSplit(fs, ignore...),
		NewDefault(fs, ignore...),
	}
}
