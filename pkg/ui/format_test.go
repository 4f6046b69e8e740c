package ui_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/vibesync/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat_Aliases(t *testing.T) {
	cases := map[string]ui.Format{
		"":         ui.FormatAuto,
		"auto":     ui.FormatAuto,
		"term":     ui.FormatTerminal,
		"TERMINAL": ui.FormatTerminal,
		"plain":    ui.FormatText,
		"Text":     ui.FormatText,
		"json":     ui.FormatJSON,
		"yml":      ui.FormatYAML,
		"YAML":     ui.FormatYAML,
	}

	for in, want := range cases {
		got, err := ui.ParseFormat(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

// Every named format must survive String then ParseFormat, since the
// --output flag default is produced from String.
func TestFormat_StringParsesBack(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		got, err := ui.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, "unknown", ui.Format(42).String())
}

func TestParseFormat_Rejects(t *testing.T) {
	for _, in := range []string{"xml", "markdown", "jsonl"} {
		_, err := ui.ParseFormat(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), in)
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR falls back to text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("redirected output is text", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "report")
		require.NoError(t, err)
		t.Cleanup(func() { _ = f.Close() })
		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})
}
