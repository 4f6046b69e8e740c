package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/presets"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// Format is a config file syntax
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatYAML:
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown config format %q (use yaml or toml)", s)
	}
}

// FileName returns the default config file name for the format
func (f Format) FileName() string {
	return "vibesync." + string(f)
}

// DefaultSource and DefaultDestinations seed a freshly generated config
var (
	DefaultSource       = presets.Gemini
	DefaultDestinations = []string{presets.ClaudeCode, presets.Cline, presets.KiloCode, presets.Jules, presets.RooCode}
)

// Default returns the configuration written by init
func Default() *Config {
	cfg := &Config{
		Version:  SupportedVersion,
		SyncFrom: Entry{Preset: DefaultSource},
	}
	for _, d := range DefaultDestinations {
		cfg.SyncTo = append(cfg.SyncTo, Entry{Preset: d})
	}
	return cfg
}

// GenerateYAML renders the default configuration with guidance comments
func GenerateYAML() string {
	var b strings.Builder
	b.WriteString("# Vibe Sync Configuration\n\n")
	fmt.Fprintf(&b, "version: %d\n\n", SupportedVersion)
	fmt.Fprintf(&b, "sync_from: %q\n", DefaultSource)
	b.WriteString("# sync_from:\n#   custom: path/to/rules/\n\n")
	b.WriteString("sync_to:\n")
	for _, d := range DefaultDestinations {
		fmt.Fprintf(&b, "  - %q\n", d)
	}
	b.WriteString("#  - custom: path/to/OTHER.md\n")
	b.WriteString("\n# Known presets: " + strings.Join(presets.Names(), ", ") + "\n")
	return b.String()
}

// tomlFile mirrors Config with entries flattened for encoding
type tomlFile struct {
	Version  int           `toml:"version"`
	SyncFrom interface{}   `toml:"sync_from"`
	SyncTo   []interface{} `toml:"sync_to"`
}

func entryValue(e Entry) interface{} {
	if !e.IsCustom() {
		return e.Preset
	}
	m := map[string]string{"custom": e.Custom}
	if e.Type != "" {
		m["type"] = e.Type
	}
	return m
}

// GenerateTOML encodes a configuration as TOML
func GenerateTOML(cfg *Config) (string, error) {
	doc := tomlFile{
		Version:  cfg.Version,
		SyncFrom: entryValue(cfg.SyncFrom),
	}
	for _, e := range cfg.SyncTo {
		doc.SyncTo = append(doc.SyncTo, entryValue(e))
	}

	var buf bytes.Buffer
	buf.WriteString("# Vibe Sync Configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode TOML config")
	}
	return buf.String(), nil
}

// Generate renders the default configuration in the given format
func Generate(format Format) (string, error) {
	switch format {
	case FormatYAML:
		return GenerateYAML(), nil
	case FormatTOML:
		return GenerateTOML(Default())
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
}

// WriteDefault writes the default configuration to path, refusing to
// replace an existing file
func WriteDefault(fsys types.FS, path string, format Format) error {
	presence, err := filesystem.Inspect(fsys, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	if presence.Exists() {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).
			WithDetail("path", path)
	}

	content, err := Generate(format)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to write %s", path)
	}
	return nil
}
