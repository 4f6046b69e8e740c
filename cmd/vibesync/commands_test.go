package vibesync

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/ui/display"
)

// project creates a temp project with GEMINI.md and a config syncing it to
// Claude Code and Cline
func project(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "GEMINI.md"), []byte("Be concise."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vibesync.yaml"),
		[]byte("version: 1\nsync_from: Gemini\nsync_to:\n  - Claude Code\n  - Cline\n"), 0644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSyncAndCheck(t *testing.T) {
	dir := project(t)
	cfg := filepath.Join(dir, "vibesync.yaml")

	out, err := run(t, "check", "-c", cfg, "-o", "text")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutOfSync))
	assert.Contains(t, out, display.MsgOutOfSync)

	out, err = run(t, "sync", "-c", cfg, "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, display.MsgSyncCompleted)
	assert.Equal(t, "Be concise.", readFile(t, filepath.Join(dir, "CLAUDE.md")))
	assert.Equal(t, "Be concise.", readFile(t, filepath.Join(dir, ".clinerules", "vibesync.md")))

	out, err = run(t, "check", "-c", cfg, "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, display.MsgAllInSync)
}

func TestSync_HasNoDryRun(t *testing.T) {
	dir := project(t)

	_, err := run(t, "sync", "--dry-run", "-c", filepath.Join(dir, "vibesync.yaml"), "-o", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")

	_, statErr := os.Stat(filepath.Join(dir, "CLAUDE.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSync_Overrides(t *testing.T) {
	dir := project(t)

	_, err := run(t, "sync", "-c", filepath.Join(dir, "vibesync.yaml"), "-o", "text",
		"--to", "Jules", "--to", "out/RULES.md")
	require.NoError(t, err)

	assert.Equal(t, "Be concise.", readFile(t, filepath.Join(dir, "AGENTS.md")))
	assert.Equal(t, "Be concise.", readFile(t, filepath.Join(dir, "out", "RULES.md")))
	_, statErr := os.Stat(filepath.Join(dir, "CLAUDE.md"))
	assert.True(t, os.IsNotExist(statErr), "overridden destinations are not synced")
}

func TestSync_MissingSource(t *testing.T) {
	dir := project(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "GEMINI.md")))

	_, err := run(t, "sync", "-c", filepath.Join(dir, "vibesync.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestCheck_JSON(t *testing.T) {
	dir := project(t)

	out, err := run(t, "check", "-c", filepath.Join(dir, "vibesync.yaml"), "--output", "json")
	require.Error(t, err)

	var report display.CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.AllInSync)
	require.Len(t, report.Destinations, 2)
	assert.Equal(t, "Claude Code", report.Destinations[0].Destination)
	assert.Equal(t, "missing", report.Destinations[0].Reason)
}

func TestCheck_VerboseNarration(t *testing.T) {
	dir := project(t)

	out, _ := run(t, "check", "-v", "-c", filepath.Join(dir, "vibesync.yaml"), "-o", "text")
	assert.Contains(t, out, "Checking sync for Gemini to Claude Code")
}

func TestInit(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "vibesync.yaml")
	out, err := run(t, "init", "-c", yamlPath, "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+yamlPath)
	assert.Contains(t, readFile(t, yamlPath), `sync_from: "Gemini"`)

	_, err = run(t, "init", "-c", yamlPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	tomlPath := filepath.Join(dir, "vibesync.toml")
	_, err = run(t, "init", "--format", "toml", "-c", tomlPath)
	require.NoError(t, err)
	assert.Regexp(t, `sync_from = ['"]Gemini['"]`, readFile(t, tomlPath))

	_, err = run(t, "init", "--format", "ini", "-c", filepath.Join(dir, "x.ini"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPresets(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := run(t, "presets", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "| Cursor | `.cursor` | directory |")

	out, err = run(t, "presets", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Kilo Code")
}

func TestVersionAndCompletion(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vibesync version dev")

	out, err = run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "vibesync")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRootWithoutCommand(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	_, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgErrNoCommand)
}

func TestBadOutputFormat(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	_, err := run(t, "presets", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --output")
}

func TestHelpTopics(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := run(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "layouts")
	assert.Contains(t, out, "--output")
}

func TestOverrideFlags(t *testing.T) {
	flags := overrideFlags{from: "Cline", to: []string{"Cursor", "docs/ALL.md"}}
	assert.Equal(t, map[string]interface{}{
		"sync_from": "Cline",
		"sync_to": []interface{}{
			"Cursor",
			map[string]interface{}{"custom": "docs/ALL.md"},
		},
	}, flags.overrides())

	assert.Empty(t, (&overrideFlags{}).overrides())
}
