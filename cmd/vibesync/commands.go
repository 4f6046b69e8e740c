package vibesync

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/vibesync/internal/version"
	"github.com/arthur-debert/vibesync/pkg/config"
	"github.com/arthur-debert/vibesync/pkg/core"
	"github.com/arthur-debert/vibesync/pkg/filesystem"
	"github.com/arthur-debert/vibesync/pkg/logging"
	"github.com/arthur-debert/vibesync/pkg/presets"
	"github.com/arthur-debert/vibesync/pkg/ui"
	"github.com/arthur-debert/vibesync/pkg/ui/display"
)

// overrideFlags are the --from/--to flags of sync and check
type overrideFlags struct {
	from string
	to   []string
}

func (o *overrideFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.from, "from", "", MsgFlagFrom)
	cmd.Flags().StringSliceVar(&o.to, "to", nil, MsgFlagTo)
}

// overrides turns the flags into config overrides. A value naming a preset
// selects it; anything else is a custom path.
func (o *overrideFlags) overrides() map[string]interface{} {
	out := map[string]interface{}{}
	if o.from != "" {
		out["sync_from"] = entryValue(o.from)
	}
	if len(o.to) > 0 {
		list := make([]interface{}, 0, len(o.to))
		for _, t := range o.to {
			list = append(list, entryValue(t))
		}
		out["sync_to"] = list
	}
	return out
}

func entryValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if presets.Has(s) {
		return s
	}
	return map[string]interface{}{"custom": s}
}

// resolveConfigPath returns --config or the first config file found in the
// working directory
func (g *globalOptions) resolveConfigPath() string {
	if g.configPath != "" {
		return g.configPath
	}
	return config.Find(filesystem.NewOS(), ".")
}

func (g *globalOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.output)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOutput, err)
	}
	r, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf(MsgErrRenderer, err)
	}
	return r, nil
}

func newSyncCmd(g *globalOptions) *cobra.Command {
	var flags overrideFlags

	cmd := &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.sync")
			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			configPath := g.resolveConfigPath()
			logger.Info().Str("config", configPath).Msg("Running sync")

			result, err := core.Sync(core.SyncOptions{
				ConfigPath: configPath,
				FileSystem: filesystem.NewOS(),
				Overrides:  flags.overrides(),
			})
			if err != nil {
				if result != nil && len(result.Destinations) > 1 {
					logger.Warn().
						Int("updated", len(result.Destinations)-1).
						Msg("Destinations before the failing one were already synced")
				}
				return fmt.Errorf(MsgErrSync, err)
			}

			report := display.FromSync(result)
			report.Verbose = g.verbosity > 0
			return renderer.RenderResult(report)
		},
	}

	flags.register(cmd)
	return cmd
}

func newCheckCmd(g *globalOptions) *cobra.Command {
	var flags overrideFlags

	cmd := &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := core.Check(core.CheckOptions{
				ConfigPath: g.resolveConfigPath(),
				FileSystem: filesystem.NewOS(),
				Overrides:  flags.overrides(),
				Verbose:    g.verbosity > 0,
			})
			if err != nil {
				return fmt.Errorf(MsgErrCheck, err)
			}

			if err := renderer.RenderResult(display.FromCheck(result)); err != nil {
				return err
			}
			return result.Err()
		},
	}

	flags.register(cmd)
	return cmd
}

func newInitCmd(g *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			path := g.configPath
			if path == "" {
				path = f.FileName()
			}

			if err := config.WriteDefault(filesystem.NewOS(), path, f); err != nil {
				return fmt.Errorf(MsgErrInit, err)
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgConfigCreated, path))
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatYAML), MsgFlagFormat)
	return cmd
}

func newPresetsCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "presets",
		Short:   MsgPresetsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderResult(display.FromPresets(presets.All()))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
