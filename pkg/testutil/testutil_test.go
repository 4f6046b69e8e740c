package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadTree(t *testing.T) {
	fsys := NewTestFS()
	files := map[string]string{
		"rules/a.md":       "A",
		"rules/deep/b.md":  "B",
		"workflows/deploy": "W",
	}
	WriteTree(t, fsys, "/src", files)

	assert.Equal(t, files, ReadTree(t, fsys, "/src"))
	assert.Equal(t, []string{"rules/a.md", "rules/deep/b.md", "workflows/deploy"}, TreePaths(t, fsys, "/src"))
}

func TestFaultyFS(t *testing.T) {
	boom := errors.New("boom")
	fsys := NewFaultyFS(NewTestFS())
	fsys.WriteErrors["/x"] = boom
	fsys.ReadErrors["/y"] = boom

	assert.ErrorIs(t, fsys.WriteFile("/x", nil, 0644), boom)
	require.NoError(t, fsys.WriteFile("/y", []byte("y"), 0644))
	_, err := fsys.ReadFile("/y")
	assert.ErrorIs(t, err, boom)
}

func TestMockFS(t *testing.T) {
	m := &MockFS{}
	m.On("ReadFile", "/a").Return([]byte("a"), nil)
	m.On("Stat", "/b").Return(nil, errors.New("denied"))

	data, err := m.ReadFile("/a")
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))

	_, err = m.Stat("/b")
	assert.Error(t, err)
	m.AssertCalled(t, "ReadFile", "/a")
	m.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}
