package core

import (
	"path/filepath"

	"github.com/arthur-debert/vibesync/pkg/config"
	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// loaded is the configuration of a run together with its resolved artifacts
type loaded struct {
	config     *config.Config
	configPath string
	resolved   *config.Resolved
}

// ignored lists the paths no adapter may read as source content: the
// configuration file and every destination of the run. A source that
// contains them would otherwise feed sync its own output.
func (l *loaded) ignored() []string {
	paths := []string{l.configPath}
	for _, d := range l.resolved.Destinations {
		paths = append(paths, d.Path)
	}
	return paths
}

func load(fs types.FS, configPath string, overrides map[string]interface{}) (*loaded, error) {
	if configPath == "" {
		configPath = config.DefaultFileName
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:      configPath,
		FS:        fs,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	resolved, err := config.NewResolver(fs, filepath.Dir(configPath)).Resolve(cfg)
	if err != nil {
		return nil, err
	}

	if err := verifySource(fs, resolved.Source); err != nil {
		return nil, err
	}
	return &loaded{config: cfg, configPath: filepath.Clean(configPath), resolved: resolved}, nil
}

// verifySource fails when the source is absent or is not the kind of
// artifact the configuration says it is
func verifySource(fs types.FS, src types.ResolvedArtifact) error {
	presence, err := filesystem.Inspect(fs, src.Path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat source %s", src.Path)
	}

	switch {
	case !presence.Exists():
		return errors.Newf(errors.ErrNotFound, "source %s does not exist", src.DisplayName()).
			WithDetail("path", src.Path)
	case presence == filesystem.IsDir && src.IsFile():
		return errors.Newf(errors.ErrInvalidInput, "source %s is a directory, expected a file", src.Path)
	case presence == filesystem.IsFile && src.IsDirectory():
		return errors.Newf(errors.ErrInvalidInput, "source %s is a file, expected a directory", src.Path)
	}
	return nil
}

func defaultFS(fs types.FS) types.FS {
	if fs == nil {
		return filesystem.NewOS()
	}
	return fs
}
