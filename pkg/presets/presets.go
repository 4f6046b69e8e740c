// Package presets holds the static table of known AI coding tools and where
// each keeps its rules on disk. Adapters key structural decisions off these
// exact names, so a name is matched case-sensitively and never normalized.
package presets

import (
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/registry"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// Tool names
const (
	Gemini     = "Gemini"
	ClaudeCode = "Claude Code"
	Jules      = "Jules"
	Agent      = "Agent"
	Windsurf   = "Windsurf"
	Cline      = "Cline"
	KiloCode   = "Kilo Code"
	RooCode    = "Roo Code"
	Cursor     = "Cursor"
)

// Preset is the default location of one tool's rules, relative to the
// directory holding the configuration file
type Preset struct {
	Name        string
	Path        string
	Type        types.ArtifactType
	Description string
}

var builtin = []Preset{
	{Gemini, "GEMINI.md", types.ArtifactFile, "single GEMINI.md context file"},
	{ClaudeCode, "CLAUDE.md", types.ArtifactFile, "single CLAUDE.md memory file"},
	{Jules, "AGENTS.md", types.ArtifactFile, "single AGENTS.md instructions file"},
	{Agent, ".agent", types.ArtifactDirectory, "rules/ and workflows/ under .agent"},
	{Windsurf, ".windsurf", types.ArtifactDirectory, "rules/ and workflows/ under .windsurf"},
	{Cline, ".clinerules", types.ArtifactDirectory, "rules at the root, workflows/ alongside"},
	{KiloCode, ".kilocode", types.ArtifactDirectory, "rules/ and workflows/ under .kilocode"},
	{RooCode, ".roo", types.ArtifactDirectory, "rules/ and workflows/ under .roo"},
	{Cursor, ".cursor", types.ArtifactDirectory, "rules/*.mdc with an alwaysApply header"},
}

var table = registry.New[Preset]()

func init() {
	for _, p := range builtin {
		registry.MustRegister(table, p.Name, p)
	}
}

// Get looks up a preset by its exact name
func Get(name string) (Preset, error) {
	p, err := table.Get(name)
	if err != nil {
		return Preset{}, errors.Wrapf(err, errors.ErrPresetNotFound, "unknown preset %q", name).
			WithDetail("preset", name)
	}
	return p, nil
}

// Has reports whether name is a known preset
func Has(name string) bool {
	return table.Has(name)
}

// Names returns every preset name in table order
func Names() []string {
	return table.List()
}

// All returns every preset in table order
func All() []Preset {
	names := table.List()
	all := make([]Preset, 0, len(names))
	for _, n := range names {
		all = append(all, registry.MustGet(table, n))
	}
	return all
}
