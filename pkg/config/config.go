package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arthur-debert/vibesync/pkg/errors"
	"github.com/arthur-debert/vibesync/pkg/presets"
	"github.com/arthur-debert/vibesync/pkg/types"
)

// SupportedVersion is the only config schema version understood
const SupportedVersion = 1

// Config is the decoded configuration file
type Config struct {
	Version  int     `koanf:"version"`
	SyncFrom Entry   `koanf:"sync_from"`
	SyncTo   []Entry `koanf:"sync_to"`

	// Path of the file the configuration was loaded from
	Path string `koanf:"-"`
}

// Entry is one side of a sync: a preset name or a custom path.
// Type optionally pins a custom path to "file" or "directory".
type Entry struct {
	Preset string `koanf:"preset"`
	Custom string `koanf:"custom"`
	Type   string `koanf:"type"`
}

// IsCustom reports whether the entry names an explicit path
func (e Entry) IsCustom() bool {
	return e.Custom != ""
}

// String renders the entry the way it is written in the config file
func (e Entry) String() string {
	if e.IsCustom() {
		return fmt.Sprintf("custom: %s", e.Custom)
	}
	return e.Preset
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if c.Version != SupportedVersion {
		return errors.Newf(errors.ErrConfigValid, "unsupported config version %d (expected %d)", c.Version, SupportedVersion).
			WithDetail("version", c.Version)
	}
	if err := c.SyncFrom.validate("sync_from"); err != nil {
		return err
	}
	if len(c.SyncTo) == 0 {
		return errors.New(errors.ErrConfigValid, "sync_to must list at least one destination")
	}
	for i, e := range c.SyncTo {
		if err := e.validate(fmt.Sprintf("sync_to[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (e Entry) validate(field string) error {
	switch {
	case e.Preset == "" && e.Custom == "":
		return errors.Newf(errors.ErrConfigValid, "%s is empty", field)
	case e.Preset != "" && e.Custom != "":
		return errors.Newf(errors.ErrConfigValid, "%s sets both a preset and a custom path", field)
	case e.Preset != "" && !presets.Has(e.Preset):
		return errors.Newf(errors.ErrPresetNotFound, "%s: unknown preset %q (known: %s)",
			field, e.Preset, strings.Join(presets.Names(), ", ")).
			WithDetail("preset", e.Preset)
	case e.Preset != "" && e.Type != "":
		return errors.Newf(errors.ErrConfigValid, "%s: type can only be set on custom entries", field)
	}
	if e.Type != "" {
		if _, err := types.ParseArtifactType(e.Type); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "%s has an invalid type", field)
		}
	}
	return nil
}

// entryHookFunc decodes a bare string into a preset entry
func entryHookFunc() mapstructure.DecodeHookFunc {
	entryType := reflect.TypeOf(Entry{})
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != entryType || f.Kind() != reflect.String {
			return data, nil
		}
		return Entry{Preset: strings.TrimSpace(data.(string))}, nil
	}
}

// entryListHookFunc splits a delimited string, as environment variables
// carry it, into a list of preset entries
func entryListHookFunc(sep string) mapstructure.DecodeHookFunc {
	listType := reflect.TypeOf([]Entry{})
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != listType || f.Kind() != reflect.String {
			return data, nil
		}
		var entries []Entry
		for _, part := range strings.Split(data.(string), sep) {
			if name := strings.TrimSpace(part); name != "" {
				entries = append(entries, Entry{Preset: name})
			}
		}
		return entries, nil
	}
}
