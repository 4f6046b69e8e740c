package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vibesync/pkg/presets"
	"github.com/arthur-debert/vibesync/pkg/types"
)

func TestCursorFrontmatter(t *testing.T) {
	assert.Equal(t, cursorHeader+"Hello", wrapCursor("Hello"))
	assert.Equal(t, cursorHeader+"Hello", wrapCursor(cursorHeader+"Hello"), "wrap is idempotent")
	assert.Equal(t, "Hello", unwrapCursor(cursorHeader+"Hello"))
	assert.Equal(t, "---\nalwaysApply: false\n---\nX", unwrapCursor("---\nalwaysApply: false\n---\nX"),
		"only the exact header is stripped")
	assert.Equal(t, "Hello", unwrapCursor(wrapCursor("Hello")))
}

func TestRenames(t *testing.T) {
	assert.Equal(t, "a.mdc", toMDC("a.md"))
	assert.Equal(t, "a.mdc", toMDC("a.mdc"))
	assert.Equal(t, "a.txt", toMDC("a.txt"))
	assert.Equal(t, "a.md", fromMDC("a.mdc"))
	assert.Equal(t, "a.md", fromMDC("a.md"))
}

func TestBuildMappings_CanonicalToCline(t *testing.T) {
	mappings := mappingsFor(
		types.ResolvedArtifact{Path: "/src", Type: types.ArtifactDirectory},
		types.ResolvedArtifact{Name: presets.Cline, Path: "/dst", Type: types.ArtifactDirectory},
	)
	require.Len(t, mappings, 2)

	rules := mappings[0]
	assert.Equal(t, SegmentRules, rules.Segment)
	assert.Equal(t, "rules", rules.Src)
	assert.Equal(t, "", rules.Dest)
	assert.Nil(t, rules.Filter)
	assert.Nil(t, rules.Rename)
	assert.Nil(t, rules.Transform)
	assert.Equal(t, []string{"workflows"}, rules.Shadowed)

	workflows := mappings[1]
	assert.Equal(t, "workflows", workflows.Src)
	assert.Equal(t, "workflows", workflows.Dest)
	assert.Empty(t, workflows.Shadowed)
}

func TestBuildMappings_ClineToCanonical(t *testing.T) {
	mappings := mappingsFor(
		types.ResolvedArtifact{Name: presets.Cline, Path: "/src", Type: types.ArtifactDirectory},
		types.ResolvedArtifact{Path: "/dst", Type: types.ArtifactDirectory},
	)
	require.Len(t, mappings, 2)

	rules := mappings[0]
	assert.Equal(t, "", rules.Src)
	assert.Equal(t, "rules", rules.Dest)
	require.NotNil(t, rules.Filter)
	assert.True(t, rules.Filter("intro.md"))
	assert.True(t, rules.Filter("workflowsish.md"))
	assert.False(t, rules.Filter("workflows/ship.md"))
	assert.Empty(t, rules.Shadowed)
}

func TestBuildMappings_Symmetric(t *testing.T) {
	cursor := types.ResolvedArtifact{Name: presets.Cursor, Path: "/c", Type: types.ArtifactDirectory}
	plain := types.ResolvedArtifact{Path: "/p", Type: types.ArtifactDirectory}

	out := mappingsFor(plain, cursor)
	back := mappingsFor(cursor, plain)
	require.Len(t, out, 1, "Cursor has no workflows segment")
	require.Len(t, back, 1)

	name := out[0].Rename("intro.md")
	assert.Equal(t, "intro.mdc", name)
	assert.Equal(t, "intro.md", back[0].Rename(name))

	wrapped := out[0].Transform("intro.md")("Hello")
	assert.Equal(t, "Hello", back[0].Transform(name)(wrapped))

	assert.Nil(t, out[0].Transform("diagram.png"))
	assert.Nil(t, back[0].Transform("diagram.png"))
}

func TestMappingsFor_FileSourceFeedsRulesOnly(t *testing.T) {
	mappings := mappingsFor(
		types.ResolvedArtifact{Name: presets.Gemini, Path: "/GEMINI.md", Type: types.ArtifactFile},
		types.ResolvedArtifact{Name: presets.KiloCode, Path: "/dst", Type: types.ArtifactDirectory},
	)
	require.Len(t, mappings, 1)
	assert.Equal(t, SegmentRules, mappings[0].Segment)
}
