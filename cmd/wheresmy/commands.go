package wheresmy

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/wheresmy/internal/version"
	"github.com/arthur-debert/wheresmy/pkg/automation"
	"github.com/arthur-debert/wheresmy/pkg/cobrax/topics"
	"github.com/arthur-debert/wheresmy/pkg/config"
	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/filesystem"
	"github.com/arthur-debert/wheresmy/pkg/locate"
	"github.com/arthur-debert/wheresmy/pkg/logging"
	"github.com/arthur-debert/wheresmy/pkg/ui/display"
	"github.com/arthur-debert/wheresmy/pkg/ui/output/styles"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		noColor    bool
		format     string
	)

	rootCmd := &cobra.Command{
		Use:     "wheresmy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			if noColor || os.Getenv("NO_COLOR") != "" {
				styles.DisableColor()
				pterm.DisableStyling()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// Without a subcommand, show the device list
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "devices",
		Title: "DEVICES:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newPingCmd())
	rootCmd.AddCommand(newIconsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if !styled() {
		opts.Renderer = topics.NewPlainGlamourRenderer()
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics, helpTopicsDir, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func runList(cmd *cobra.Command) error {
	a, err := loadApp(cmd, nil)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	devices := a.registry().Load()
	log.Info().Int("count", len(devices)).Str("storage", a.storagePath()).Msg("Listing devices")

	return renderer.RenderResult(display.NewDeviceListResult(devices))
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		GroupID: "devices",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [name]",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		GroupID: "devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			icon, _ := cmd.Flags().GetString("icon")
			// Unquoted names arrive as several words
			name := strings.Join(args, " ")

			if strings.TrimSpace(name) == "" {
				if !canPrompt() {
					return errors.New(errors.ErrInvalidInput, MsgErrMissingName)
				}
				var err error
				name, icon, err = promptDevice(icon)
				if err != nil {
					return err
				}
			}

			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			device, err := a.registry().Add(name, icon)
			if err != nil {
				return err
			}

			return renderer.RenderResult(&display.DeviceResult{
				Action: MsgActionAdded,
				Device: display.NewDeviceView(device),
			})
		},
	}

	cmd.Flags().StringP("icon", "i", "", MsgFlagIcon)
	_ = cmd.RegisterFlagCompletionFunc("icon", iconCompletion)

	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "remove <id|name>",
		Aliases:           []string{"rm"},
		Short:             MsgRemoveShort,
		GroupID:           "devices",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: deviceCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			reg := a.registry()
			device, err := resolveDevice(reg, args[0])
			if err != nil {
				return err
			}

			if _, err := reg.Remove(device.ID); err != nil {
				return err
			}

			return renderer.RenderResult(&display.DeviceResult{
				Action: MsgActionRemoved,
				Device: display.NewDeviceView(device),
			})
		},
	}
}

func newPingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "ping <id|name>",
		Short:             MsgPingShort,
		Long:              MsgPingLong,
		Example:           MsgPingExample,
		GroupID:           "devices",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: deviceCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("shortcut") {
				shortcut, _ := cmd.Flags().GetString("shortcut")
				overrides["shortcut"] = shortcut
			}
			if cmd.Flags().Changed("delay") {
				delay, _ := cmd.Flags().GetFloat64("delay")
				overrides["activation_delay"] = delay
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			a, err := loadApp(cmd, overrides)
			if err != nil {
				return err
			}

			device, err := resolveDevice(a.registry(), args[0])
			if err != nil {
				return err
			}

			if dryRun {
				trigger := locate.New(a.config.Locate(), automation.DryRun{Out: cmd.OutOrStdout()})
				return trigger.Ping(cmd.Context(), device.Name)
			}

			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			if err := ping(cmd, locate.New(a.config.Locate(), a.runner()), device.Name); err != nil {
				return err
			}

			return renderer.RenderResult(&display.PingResult{
				Device:   display.NewDeviceView(device),
				Phrase:   locate.Phrase(device.Name),
				Shortcut: a.config.Shortcut,
			})
		},
	}

	cmd.Flags().String("shortcut", "", MsgFlagShortcut)
	cmd.Flags().Float64("delay", 0, MsgFlagDelay)
	cmd.Flags().Bool("dry-run", false, MsgFlagDryRun)

	return cmd
}

// ping starts the trigger and waits for it, with a spinner on terminals
func ping(cmd *cobra.Command, trigger *locate.Trigger, name string) error {
	result := trigger.Start(cmd.Context(), name)

	stderr, ok := cmd.ErrOrStderr().(*os.File)
	if !ok || !isTerminal(stderr) {
		return <-result
	}

	spinner, err := pterm.DefaultSpinner.
		WithWriter(stderr).
		WithRemoveWhenDone(true).
		Start(fmt.Sprintf(MsgPingSpinner, locate.Phrase(name)))
	if err != nil {
		return <-result
	}

	err = <-result
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	return spinner.Stop()
}

func newIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "icons",
		Short:   MsgIconsShort,
		GroupID: "devices",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderResult(display.NewIconListResult())
		},
	}
}

// iconCompletion completes icon aliases
func iconCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	result := display.NewIconListResult()
	aliases := make([]string, 0, len(result.Icons))
	for _, icon := range result.Icons {
		aliases = append(aliases, icon.Alias+"\t"+icon.Title)
	}
	return aliases, cobra.ShellCompDirectiveNoFileComp
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}

			if showPaths, _ := cmd.Flags().GetBool("paths"); showPaths {
				opts := configOptions(cmd, a.paths)
				_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgPathsFormat,
					opts.ConfigFile, a.paths.DataDir(), a.storagePath(), a.paths.LogFilePath())
				return err
			}

			content, err := a.config.TOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}

	cmd.Flags().Bool("paths", false, MsgFlagPaths)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Aliases: []string{"gen-config"},
		Short:   MsgGenConfigShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			force, _ := cmd.Flags().GetBool("force")
			content := config.GenerateConfigContent()

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			p, err := initPaths()
			if err != nil {
				return err
			}
			target := configOptions(cmd, p).ConfigFile

			fs := filesystem.NewOS()
			if _, err := fs.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, target).
					WithDetail("path", target)
			}
			if err := fs.MkdirAll(p.ConfigDir(), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", p.ConfigDir())
			}
			if err := fs.WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", target)
			}

			log.Info().Str("path", target).Msg("Wrote default configuration")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return err
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolP("force", "f", false, MsgFlagForce)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Run == nil {
				return errors.New(errors.ErrInternal, MsgTopicsNotFound)
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}
