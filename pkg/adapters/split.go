package adapters

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/vibesync/pkg/actions"
	"github.com/arthur-debert/vibesync/pkg/compare"
	"github.com/arthur-debert/vibesync/pkg/logging"
	"github.com/arthur-debert/vibesync/pkg/presets"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// StructuredSplit reconciles tools that split their documents into rules and
// workflows segments. It claims a pair when either side is one of its tools;
// the direction of the mapping falls out of the two layouts. When a layout
// renames or wraps documents the plan uses Transform actions for them, which
// makes the Cursor instance the renaming variant.
type StructuredSplit struct {
	name   string
	tools  []string
	fs     types.FS
	cmp    *compare.Comparator
	ignore []string
	logger zerolog.Logger
}

func newStructuredSplit(fs types.FS, name string, tools []string, ignore []string) *StructuredSplit {
	return &StructuredSplit{
		name:   name,
		tools:  tools,
		fs:     fs,
		ignore: ignore,
		cmp:    compare.New(fs),
		logger: logging.GetLogger("adapters").With().Str("adapter", name).Logger(),
	}
}

// NewClineSplit handles Cline's rules-at-root layout. Paths in ignore are
// never read from the source.
func NewClineSplit(fs types.FS, ignore ...string) *StructuredSplit {
	return newStructuredSplit(fs, "Cline", []string{presets.Cline}, ignore)
}

// NewCodeSplit handles Kilo Code and Roo Code
func NewCodeSplit(fs types.FS, ignore ...string) *StructuredSplit {
	return newStructuredSplit(fs, "Code", []string{presets.KiloCode, presets.RooCode}, ignore)
}

// NewCursorSplit handles Cursor's .mdc rules with their alwaysApply header
func NewCursorSplit(fs types.FS, ignore ...string) *StructuredSplit {
	return newStructuredSplit(fs, "Cursor", []string{presets.Cursor}, ignore)
}

func (a *StructuredSplit) Name() string { return a.name }

func (a *StructuredSplit) CanHandle(src, dst types.ResolvedArtifact) bool {
	if dst.IsFile() {
		return false
	}
	return a.claims(src.Name) || a.claims(dst.Name)
}

func (a *StructuredSplit) claims(name string) bool {
	for _, t := range a.tools {
		if t == name {
			return true
		}
	}
	return false
}

func (a *StructuredSplit) Plan(src, dst types.ResolvedArtifact) ([]actions.Action, error) {
	mappings := mappingsFor(src, dst)
	a.logger.Debug().
		Str("source", src.DisplayName()).
		Str("destination", dst.DisplayName()).
		Int("mappings", len(mappings)).
		Msg("Planning structured sync")
	return planMappings(a.fs, src, dst, mappings, excludedFor(dst, a.ignore))
}

func (a *StructuredSplit) Check(src, dst types.ResolvedArtifact) (compare.Result, error) {
	return checkMappings(a.fs, a.cmp, src, dst, mappingsFor(src, dst), excludedFor(dst, a.ignore))
}
