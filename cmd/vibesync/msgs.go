package vibesync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep AI coding tool rules in sync"
	MsgSyncShort       = "Make every destination match the source"
	MsgCheckShort      = "Report destinations that are out of sync"
	MsgInitShort       = "Create a default vibesync configuration"
	MsgPresetsShort    = "List the known tool presets"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigCreated = "[success]Created[/success] [path]%s[/path]"
	MsgVersionFormat = "vibesync version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrSync      = "sync failed: %w"
	MsgErrCheck     = "check failed: %w"
	MsgErrInit      = "failed to create configuration: %w"
	MsgErrOutput    = "invalid --output: %w"
	MsgErrNoCommand = "no command specified"
	MsgErrRenderer  = "failed to create renderer: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Configuration file (default: vibesync.yaml, .yml or .toml in the current directory)"
	MsgFlagOutput  = "Output format: auto, term, text, json or yaml"
	MsgFlagFrom    = "Override sync_from with a preset name or a path"
	MsgFlagTo      = "Override sync_to; repeat or comma-separate preset names or paths"
	MsgFlagFormat  = "Configuration format: yaml or toml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimRight(msgSyncExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)
)

// MsgCompletionLong documents how to load completions
const MsgCompletionLong = `To load completions:

Bash:
  $ source <(vibesync completion bash)

Zsh:
  $ vibesync completion zsh > "${fpath[1]}/_vibesync"

Fish:
  $ vibesync completion fish | source

PowerShell:
  PS> vibesync completion powershell | Out-String | Invoke-Expression
`
