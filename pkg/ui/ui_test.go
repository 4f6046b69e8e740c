package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/ui"
	"github.com/arthur-debert/vibesync/pkg/ui/display"
)

func sampleCheck() *display.CheckReport {
	return &display.CheckReport{
		Config:    "/p/vibesync.yaml",
		Source:    "/p/rules (directory)",
		AllInSync: false,
		Destinations: []display.CheckLine{
			{Destination: "Cline", Path: "/p/.clinerules", Adapter: "Cline", InSync: true, Detail: "in sync"},
			{Destination: "Cursor", Path: "/p/.cursor", Adapter: "Cursor", Reason: "missing",
				File: "/p/.cursor/rules/intro.mdc", Detail: "missing /p/.cursor/rules/intro.mdc"},
		},
	}
}

func sampleSync() *display.SyncReport {
	return &display.SyncReport{
		Source: "GEMINI.md (file)",
		Destinations: []display.SyncLine{
			{Destination: "Claude Code", Path: "CLAUDE.md", Adapter: "Default",
				Actions: []string{"copy GEMINI.md -> CLAUDE.md"}, Summary: "1 actions applied"},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			renderer, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRendererInterface(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			assert.NoError(t, renderer.RenderMessage("[success]done[/success]"))
			assert.NoError(t, renderer.RenderError(assert.AnError))
			assert.NoError(t, renderer.RenderResult(sampleCheck()))
			assert.NoError(t, renderer.RenderResult(sampleSync()))
			assert.NoError(t, renderer.RenderResult(&display.PresetList{}))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestTextRenderer_CheckReport(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleCheck()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "check_report_text", buf.Bytes())
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("message markup is stripped", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("[success]All items are in sync![/success]"))
		assert.Equal(t, "All items are in sync!\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "Error: assert.AnError general error for testing\n", buf.String())
	})

	t.Run("sync hides actions by default", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(sampleSync()))
		assert.NotContains(t, buf.String(), "copy GEMINI.md")
		assert.Contains(t, buf.String(), display.MsgSyncCompleted)
	})

	t.Run("verbose sync lists actions", func(t *testing.T) {
		buf.Reset()
		report := sampleSync()
		report.Verbose = true
		require.NoError(t, renderer.RenderResult(report))
		assert.Contains(t, buf.String(), "copy GEMINI.md -> CLAUDE.md")
	})

	t.Run("presets as markdown", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(&display.PresetList{Presets: []display.PresetLine{
			{Name: "Cline", Path: ".clinerules", Type: "directory", Description: "rules at the root"},
		}}))
		assert.Contains(t, buf.String(), "| Cline | `.clinerules` | directory | rules at the root |")
	})

	t.Run("unknown result type", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(map[string]string{"foo": "bar"}))
		assert.Contains(t, buf.String(), "map[foo:bar]")
	})
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("check report", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(sampleCheck()))

		var got display.CheckReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.False(t, got.AllInSync)
		require.Len(t, got.Destinations, 2)
		assert.Equal(t, "missing", got.Destinations[1].Reason)
		assert.NotContains(t, buf.String(), "reason\": \"\"", "empty reasons are omitted")
	})

	t.Run("coded error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(errors.New(errors.ErrOutOfSync, "1 of 2 destinations out of sync")))

		var got map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "OUT_OF_SYNC", got["code"])
	})

	t.Run("message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("[info]hello[/info]"))

		var got map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "hello", got["message"])
	})
}

func TestYAMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatYAML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleCheck()))

	var got display.CheckReport
	require.NoError(t, yamlv3.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/p/vibesync.yaml", got.Config)
	require.Len(t, got.Destinations, 2)
	assert.True(t, got.Destinations[0].InSync)
	assert.Equal(t, "/p/.cursor/rules/intro.mdc", got.Destinations[1].File)
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleCheck()))
	out := buf.String()
	assert.Contains(t, out, "Cline")
	assert.Contains(t, out, display.MsgOutOfSync)
	assert.NotContains(t, out, "[adapter]")

	buf.Reset()
	require.NoError(t, renderer.RenderResult(&display.PresetList{Presets: []display.PresetLine{
		{Name: "Cursor", Path: ".cursor", Type: "directory"},
	}}))
	assert.Contains(t, buf.String(), "Cursor")
}
