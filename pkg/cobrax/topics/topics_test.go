package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopics() fstest.MapFS {
	return fstest.MapFS{
		"option-output.txt": {Data: []byte("Choose the output format")},
		"layouts.md":        {Data: []byte("# Layouts\n\nrules/ and workflows/")},
		"nested/cursor.md":  {Data: []byte("Cursor uses .mdc")},
		"config.txxt":       {Data: []byte("Configuration Guide")},
		"ignore.json":       {Data: []byte("{}")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testTopics())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"cursor", "layouts", "option-output"}, tm.ListTopics())

		topic, ok := tm.GetTopic("layouts")
		require.True(t, ok)
		assert.Equal(t, "# Layouts\n\nrules/ and workflows/", topic.Content)
		assert.Equal(t, "layouts.md", topic.FilePath)

		_, ok = tm.GetTopic("config")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testTopics(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := New(testTopics())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"--output", "-output", "output", "option-output"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Choose the output format", topic.Content)
	}
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "vibesync", Run: func(cmd *cobra.Command, args []string) {}}
	root.AddCommand(&cobra.Command{Use: "sync", Short: "Sync things", Run: func(cmd *cobra.Command, args []string) {}})

	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	require.NoError(t, Initialize(root, testTopics()))
	return root, buf
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", "cursor"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "Cursor uses .mdc", buf.String())
	})

	t.Run("topic list", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		out := buf.String()
		assert.Contains(t, out, "General topics:\n  cursor\n  layouts\n")
		assert.Contains(t, out, "Option topics:\n  --output\n")
		assert.Contains(t, out, "Use 'vibesync help <topic>'")
	})

	t.Run("command falls back to cobra help", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", "sync"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Sync things")
	})
}

func TestRenderers(t *testing.T) {
	plain := &PlainRenderer{}
	assert.Equal(t, "# x", plain.Render("# x", ".md"))

	g := NewGlamourRenderer()
	assert.Equal(t, "plain text", g.Render("plain text", ".txt"))
	assert.Contains(t, g.Render("# Heading", ".md"), "Heading")
}
