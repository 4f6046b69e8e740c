package types

import "fmt"

// ArtifactType tells whether a resolved artifact is a single file or a directory tree
type ArtifactType string

const (
	ArtifactFile      ArtifactType = "file"
	ArtifactDirectory ArtifactType = "directory"
)

// ParseArtifactType converts a configuration string into an ArtifactType
func ParseArtifactType(s string) (ArtifactType, error) {
	switch ArtifactType(s) {
	case ArtifactFile, ArtifactDirectory:
		return ArtifactType(s), nil
	default:
		return "", fmt.Errorf("unknown artifact type %q", s)
	}
}

// ResolvedArtifact is a configuration entry after preset lookup and path resolution.
// Name is the tool identifier ("Cline", "Cursor", ...) and is empty for custom paths.
// Values are created once per run and never mutated.
type ResolvedArtifact struct {
	Name string
	Path string
	Type ArtifactType
}

// IsFile reports whether the artifact is a single file
func (a ResolvedArtifact) IsFile() bool {
	return a.Type == ArtifactFile
}

// IsDirectory reports whether the artifact is a directory tree
func (a ResolvedArtifact) IsDirectory() bool {
	return a.Type == ArtifactDirectory
}

// DisplayName returns the tool name, falling back to the path for custom entries
func (a ResolvedArtifact) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Path
}

// String implements fmt.Stringer
func (a ResolvedArtifact) String() string {
	return fmt.Sprintf("%s (%s)", a.DisplayName(), a.Type)
}
