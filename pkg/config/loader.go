package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/logging"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// DefaultFileName is the config file looked up when none is given
const DefaultFileName = "vibesync.yaml"

// EnvPrefix prefixes environment overrides, e.g. VIBESYNC_SYNC_FROM
const EnvPrefix = "VIBESYNC_"

// candidateNames are tried in order by Find
var candidateNames = []string{"vibesync.yaml", "vibesync.yml", "vibesync.toml"}

// LoadOptions controls Load
type LoadOptions struct {
	Path string
	FS   types.FS
	// Overrides are applied last, keyed like the file ("sync_from", "sync_to")
	Overrides map[string]interface{}
}

// Load reads, layers, decodes and validates a configuration file
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	parser, err := parserFor(opts.Path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(opts.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found (run 'vibesync init' to create one)", opts.Path).
				WithDetail("path", opts.Path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", opts.Path)
	}

	k := koanf.New(".")

	// 1. Config file
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", opts.Path)
	}

	// 2. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 3. Caller overrides replace whole keys rather than merging into them
	if len(opts.Overrides) > 0 {
		for key := range opts.Overrides {
			k.Delete(key)
		}
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				entryListHookFunc(","),
				entryHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid configuration in %s", opts.Path)
	}
	cfg.Path = opts.Path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", opts.Path).
		Str("sync_from", cfg.SyncFrom.String()).
		Int("sync_to", len(cfg.SyncTo)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q (use .yaml, .yml or .toml)", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Find returns the first existing candidate config file in dir, or the
// default name when none exists
func Find(fsys types.FS, dir string) string {
	for _, name := range candidateNames {
		p := filepath.Join(dir, name)
		if presence, err := filesystem.Inspect(fsys, p); err == nil && presence == filesystem.IsFile {
			return p
		}
	}
	return filepath.Join(dir, DefaultFileName)
}
