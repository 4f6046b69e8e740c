package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/presets"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// Resolved is a configuration turned into artifacts
type Resolved struct {
	Source       types.ResolvedArtifact
	Destinations []types.ResolvedArtifact
}

// Resolver turns entries into artifacts relative to a base directory
type Resolver struct {
	fs      types.FS
	baseDir string
}

// NewResolver creates a resolver for paths relative to baseDir
func NewResolver(fsys types.FS, baseDir string) *Resolver {
	return &Resolver{fs: fsys, baseDir: baseDir}
}

// Resolve resolves the source and every destination, in config order
func (r *Resolver) Resolve(cfg *Config) (*Resolved, error) {
	src, err := r.ResolveEntry(cfg.SyncFrom)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "cannot resolve sync_from")
	}

	dests := make([]types.ResolvedArtifact, 0, len(cfg.SyncTo))
	for _, e := range cfg.SyncTo {
		dst, err := r.ResolveEntry(e)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "cannot resolve sync_to entry %q", e)
		}
		dests = append(dests, dst)
	}
	return &Resolved{Source: src, Destinations: dests}, nil
}

// ResolveEntry resolves a single entry
func (r *Resolver) ResolveEntry(e Entry) (types.ResolvedArtifact, error) {
	if !e.IsCustom() {
		p, err := presets.Get(e.Preset)
		if err != nil {
			return types.ResolvedArtifact{}, err
		}
		return types.ResolvedArtifact{
			Name: p.Name,
			Path: r.abs(p.Path),
			Type: p.Type,
		}, nil
	}

	path := r.abs(e.Custom)
	artifactType, err := r.customType(e, path)
	if err != nil {
		return types.ResolvedArtifact{}, err
	}
	return types.ResolvedArtifact{Path: path, Type: artifactType}, nil
}

// customType decides file or directory for a custom path: an explicit type
// wins, then a trailing slash, then what is on disk, then the extension
func (r *Resolver) customType(e Entry, path string) (types.ArtifactType, error) {
	if e.Type != "" {
		return types.ParseArtifactType(e.Type)
	}
	if strings.HasSuffix(e.Custom, "/") || strings.HasSuffix(e.Custom, string(filepath.Separator)) {
		return types.ArtifactDirectory, nil
	}

	presence, err := filesystem.Inspect(r.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	switch presence {
	case filesystem.IsDir:
		return types.ArtifactDirectory, nil
	case filesystem.IsFile:
		return types.ArtifactFile, nil
	}

	if filepath.Ext(path) != "" {
		return types.ArtifactFile, nil
	}
	return types.ArtifactDirectory, nil
}

func (r *Resolver) abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.baseDir, p)
}
