package hashutil

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/vibesync/pkg/filesystem"
)

func TestChecksum(t *testing.T) {
	// echo -n "" | sha256sum
	assert.Equal(t, "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.Equal(t, Checksum([]byte("abc")), Checksum([]byte("abc")))
	assert.NotEqual(t, Checksum([]byte("abc")), Checksum([]byte("abd")))
}

func TestCalculateFileChecksum(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.WriteFile("/f.md", []byte("hello"), 0644))

	sum, err := CalculateFileChecksum(fsys, "/f.md")
	require.NoError(t, err)
	assert.Equal(t, Checksum([]byte("hello")), sum)

	_, err = CalculateFileChecksum(fsys, "/missing.md")
	assert.Error(t, err)
}

func TestCalculateTransformedChecksum(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.WriteFile("/f.md", []byte("hello"), 0644))

	sum, err := CalculateTransformedChecksum(fsys, "/f.md", strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, Checksum([]byte("HELLO")), sum)

	raw, err := CalculateTransformedChecksum(fsys, "/f.md", nil)
	require.NoError(t, err)
	assert.Equal(t, Checksum([]byte("hello")), raw)
}
