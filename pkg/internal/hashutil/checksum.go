package hashutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/arthur-debert/vibesync/pkg/types"
)

// Checksum returns the prefixed SHA256 digest of data
func Checksum(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// CalculateFileChecksum calculates the SHA256 checksum of a file read through fsys
func CalculateFileChecksum(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Checksum(data), nil
}

// CalculateTransformedChecksum hashes the file content after transform is applied.
// A nil transform hashes the raw content.
func CalculateTransformedChecksum(fsys types.FS, path string, transform func(string) string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	if transform != nil {
		data = []byte(transform(string(data)))
	}
	return Checksum(data), nil
}
