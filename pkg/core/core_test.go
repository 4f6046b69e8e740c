package core_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vibesync/pkg/compare"
	"github.com/arthur-debert/vibesync/pkg/core"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/testutil"
	"github.com/arthur-debert/vibesync/pkg/types"
)

const (
	configPath   = "/project/vibesync.yaml"
	cursorHeader = "---\nalwaysApply: true\n---\n"
)

const projectConfig = `version: 1
sync_from:
  custom: rules/
sync_to:
  - "Cline"
  - "Cursor"
  - custom: ALL.md
`

func setupProject(t *testing.T) types.FS {
	t.Helper()
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, configPath, projectConfig)
	testutil.WriteTree(t, fs, "/project/rules", map[string]string{
		"rules/intro.md":       "Hello",
		"workflows/release.md": "Tag it",
	})
	return fs
}

func TestSync(t *testing.T) {
	fs := setupProject(t)

	result, err := core.Sync(core.SyncOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)

	require.Len(t, result.Destinations, 3)
	assert.Equal(t, "Cline", result.Destinations[0].Adapter)
	assert.Equal(t, "Cursor", result.Destinations[1].Adapter)
	assert.Equal(t, "DirectoryToFileMerge", result.Destinations[2].Adapter)
	assert.Equal(t, "/project/rules", result.Source.Path)

	assert.Equal(t, map[string]string{
		"intro.md":             "Hello",
		"workflows/release.md": "Tag it",
	}, testutil.ReadTree(t, fs, "/project/.clinerules"))

	assert.Equal(t, map[string]string{
		"rules/intro.mdc": cursorHeader + "Hello",
	}, testutil.ReadTree(t, fs, "/project/.cursor"))

	assert.Equal(t, "Hello\nTag it", testutil.ReadString(t, fs, "/project/ALL.md"))

	for _, d := range result.Destinations {
		assert.Len(t, d.Results, len(d.Plan), d.Destination.String())
	}
}

func TestSyncThenCheck(t *testing.T) {
	fs := setupProject(t)

	before, err := core.Check(core.CheckOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)
	assert.False(t, before.AllInSync())
	assert.Len(t, before.OutOfSync(), 3)

	_, err = core.Sync(core.SyncOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)

	after, err := core.Check(core.CheckOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)
	assert.True(t, after.AllInSync())
	assert.NoError(t, after.Err())
	require.Len(t, after.Statuses, 3)
	for _, s := range after.Statuses {
		assert.Equal(t, compare.InSync(), s.Result)
	}
}

func TestSync_Idempotent(t *testing.T) {
	fs := setupProject(t)

	_, err := core.Sync(core.SyncOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)
	first := testutil.ReadTree(t, fs, "/project")

	_, err = core.Sync(core.SyncOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, first, testutil.ReadTree(t, fs, "/project"))
}

func TestCheck_ReportsDrift(t *testing.T) {
	fs := setupProject(t)
	_, err := core.Sync(core.SyncOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)

	testutil.WriteFile(t, fs, "/project/.clinerules/intro.md", "edited")

	result, err := core.Check(core.CheckOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err, "drift is not an error")

	assert.False(t, result.AllInSync())
	drifted := result.OutOfSync()
	require.Len(t, drifted, 1)
	assert.Equal(t, "Cline", drifted[0].Destination.Name)
	assert.Equal(t, compare.ReasonContent, drifted[0].Result.Reason)

	err = result.Err()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutOfSync))
	assert.Equal(t, []string{"Cline"}, errors.GetErrorDetails(err)["destinations"])
}

func TestCheck_DoesNotWrite(t *testing.T) {
	fs := setupProject(t)

	_, err := core.Check(core.CheckOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"rules/rules/intro.md",
		"rules/workflows/release.md",
		"vibesync.yaml",
	}, testutil.TreePaths(t, fs, "/project"))
}

func TestCheck_Verbose(t *testing.T) {
	fs := setupProject(t)

	quiet, err := core.Check(core.CheckOptions{ConfigPath: configPath, FileSystem: fs})
	require.NoError(t, err)
	assert.Empty(t, quiet.Narration)

	verbose, err := core.Check(core.CheckOptions{ConfigPath: configPath, FileSystem: fs, Verbose: true})
	require.NoError(t, err)
	assert.Contains(t, verbose.Narration, "Loaded configuration from /project/vibesync.yaml")
	assert.Contains(t, verbose.Narration, "Checking sync for /project/rules to Cline")
	assert.Contains(t, verbose.Narration, "Checking sync for /project/rules to /project/ALL.md")
}

// The project root as source holds the configuration file and every
// destination; none of them may be read back as source content.
func TestSync_ProjectRootAsSource(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, configPath, "version: 1\nsync_from:\n  custom: ./\nsync_to: [Agent, Gemini]\n")
	testutil.WriteTree(t, fs, "/project", map[string]string{
		"docs/b.md": "B",
		"notes.md":  "A",
	})

	for run := 0; run < 2; run++ {
		result, err := core.Sync(core.SyncOptions{ConfigPath: configPath, FileSystem: fs})
		require.NoError(t, err)
		require.Len(t, result.Destinations, 2)
		assert.Equal(t, "Default", result.Destinations[0].Adapter)
		assert.Equal(t, "DirectoryToFileMerge", result.Destinations[1].Adapter)

		assert.Equal(t, map[string]string{
			"docs/b.md": "B",
			"notes.md":  "A",
		}, testutil.ReadTree(t, fs, "/project/.agent"), "run %d", run)
		assert.Equal(t, "B\nA", testutil.ReadString(t, fs, "/project/GEMINI.md"), "run %d", run)

		checked, err := core.Check(core.CheckOptions{ConfigPath: configPath, FileSystem: fs})
		require.NoError(t, err)
		assert.True(t, checked.AllInSync(), "run %d: %+v", run, checked.Statuses)
	}
}

func TestSync_StopsAtFirstFailure(t *testing.T) {
	base := setupProject(t)
	fs := testutil.NewFaultyFS(base)
	fs.WriteErrors["/project/.cursor/rules/intro.mdc"] = stderrors.New("disk full")

	result, err := core.Sync(core.SyncOptions{ConfigPath: configPath, FileSystem: fs})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionExecute))
	assert.Contains(t, err.Error(), "syncing Cursor")

	require.Len(t, result.Destinations, 2, "the third destination is never reached")
	assert.Equal(t, "Hello", testutil.ReadString(t, base, "/project/.clinerules/intro.md"))

	_, statErr := base.Stat("/project/ALL.md")
	assert.Error(t, statErr)
}

func TestOverrides(t *testing.T) {
	fs := setupProject(t)

	result, err := core.Sync(core.SyncOptions{
		ConfigPath: configPath,
		FileSystem: fs,
		Overrides:  map[string]interface{}{"sync_to": []interface{}{"Roo Code"}},
	})
	require.NoError(t, err)

	require.Len(t, result.Destinations, 1)
	assert.Equal(t, "Code", result.Destinations[0].Adapter)
	assert.Equal(t, "Hello", testutil.ReadString(t, fs, "/project/.roo/rules/intro.md"))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, fs types.FS)
		wantCode errors.ErrorCode
	}{
		{
			name:     "missing config",
			setup:    func(t *testing.T, fs types.FS) {},
			wantCode: errors.ErrConfigLoad,
		},
		{
			name: "missing source",
			setup: func(t *testing.T, fs types.FS) {
				testutil.WriteFile(t, fs, configPath, "version: 1\nsync_from: Gemini\nsync_to: [Cline]\n")
			},
			wantCode: errors.ErrNotFound,
		},
		{
			name: "source has the wrong type",
			setup: func(t *testing.T, fs types.FS) {
				testutil.WriteFile(t, fs, configPath, "version: 1\nsync_from: Gemini\nsync_to: [Cline]\n")
				require.NoError(t, fs.MkdirAll("/project/GEMINI.md", 0755))
			},
			wantCode: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewTestFS()
			tt.setup(t, fs)

			_, syncErr := core.Sync(core.SyncOptions{ConfigPath: configPath, FileSystem: fs})
			_, checkErr := core.Check(core.CheckOptions{ConfigPath: configPath, FileSystem: fs})
			assert.True(t, errors.IsErrorCode(syncErr, tt.wantCode), "sync: %v", syncErr)
			assert.True(t, errors.IsErrorCode(checkErr, tt.wantCode), "check: %v", checkErr)
		})
	}
}
