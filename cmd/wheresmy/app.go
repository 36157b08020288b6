package wheresmy

import (
	"fmt"

	"github.com/arthur-debert/wheresmy/pkg/automation"
	"github.com/arthur-debert/wheresmy/pkg/config"
	"github.com/arthur-debert/wheresmy/pkg/datastore"
	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/filesystem"
	"github.com/arthur-debert/wheresmy/pkg/paths"
	"github.com/arthur-debert/wheresmy/pkg/registry"
	"github.com/arthur-debert/wheresmy/pkg/types"
	"github.com/arthur-debert/wheresmy/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app bundles what a command needs once paths and config are resolved
type app struct {
	paths  paths.Paths
	config *config.Config
}

// initPaths resolves the wheresmy directories
func initPaths() (paths.Paths, error) {
	p, err := paths.New()
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	return p, nil
}

// configOptions builds load options from the root --config flag
func configOptions(cmd *cobra.Command, p paths.Paths) config.LoadOptions {
	opts := config.LoadOptions{ConfigFile: p.ConfigFilePath()}
	if configFile, _ := cmd.Root().PersistentFlags().GetString("config"); configFile != "" {
		opts.ConfigFile = paths.ExpandHome(configFile)
		opts.Explicit = true
	}
	return opts
}

// loadApp resolves paths and the effective configuration. overrides are
// applied on top of every other source.
func loadApp(cmd *cobra.Command, overrides map[string]interface{}) (*app, error) {
	p, err := initPaths()
	if err != nil {
		return nil, err
	}

	opts := configOptions(cmd, p)
	opts.Overrides = overrides

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("config_file", opts.ConfigFile).
		Str("data_dir", p.DataDir()).
		Msg("Configuration loaded")

	return &app{paths: p, config: cfg}, nil
}

// storagePath is where the device list is persisted
func (a *app) storagePath() string {
	return a.paths.StoragePath(a.config.Storage.File)
}

// registry opens the device registry on the storage file
func (a *app) registry() *registry.Registry {
	store := datastore.NewFile(filesystem.NewOS(), a.storagePath())
	return registry.New(store)
}

// runner returns the automation runner that drives System Events
func (a *app) runner() automation.Runner {
	return automation.NewOsascriptRunner(a.config.Automation.Osascript, a.config.Automation.Timeout)
}

// resolveDevice finds a device by id or name
func resolveDevice(reg *registry.Registry, ref string) (types.Device, error) {
	device, ok := reg.Resolve(ref)
	if !ok {
		return types.Device{}, errors.Newf(errors.ErrNotFound, MsgErrUnknownDevice, ref).
			WithDetail("device", ref)
	}
	return device, nil
}

// newRenderer creates the renderer selected by the root --format flag
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// deviceCompletion completes registered device names
func deviceCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	a, err := loadApp(cmd, nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, d := range a.registry().Load() {
		names = append(names, d.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
