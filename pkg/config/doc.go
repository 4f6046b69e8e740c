// Package config loads vibesync.yaml (or vibesync.toml), validates it and
// resolves its entries into artifacts.
//
// Values are layered with koanf: the config file first, then VIBESYNC_*
// environment variables, then explicit overrides passed by the caller (the
// CLI's --from and --to flags). Entries are either preset names or
// {custom: path} objects; relative paths resolve against the directory that
// holds the config file.
package config
