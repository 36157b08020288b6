package wheresmy

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Ask Siri to find your devices"
	MsgListShort       = "List registered devices"
	MsgAddShort        = "Register a device"
	MsgRemoveShort     = "Remove a registered device"
	MsgPingShort       = "Ask Siri to locate a device"
	MsgIconsShort      = "List the available device icons"
	MsgConfigShort     = "Print the effective configuration"
	MsgGenConfigShort  = "Generate a commented default config file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgActionAdded      = "Added"
	MsgActionRemoved    = "Removed"
	MsgPingSpinner      = "Asking Siri: %q"
	MsgConfigWritten    = "Wrote default configuration to %s\n"
	MsgPromptName       = "Device name"
	MsgPromptIcon       = "Icon"
	MsgVersionFormat    = "wheresmy version %s\n  commit: %s\n  built:  %s\n"
	MsgPathsFormat      = "config:  %s\ndata:    %s\nstorage: %s\nlog:     %s\n"
	MsgTopicsNotFound   = "help command not found"

	// Error messages
	MsgErrInitPaths     = "failed to initialize paths: %w"
	MsgErrUnknownDevice = "no device with id or name %q"
	MsgErrMissingName   = "a device name is required"
	MsgErrUnknownIcon   = "unknown icon %q, see 'wheresmy icons'"
	MsgErrConfigExists  = "%s already exists, use --force to overwrite it"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/wheresmy/config.toml)"
	MsgFlagNoColor  = "Disable colors and styling"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagIcon     = "Device icon (see 'wheresmy icons')"
	MsgFlagShortcut = "Siri shortcut for this ping, e.g. cmd+opt+f15"
	MsgFlagDelay    = "Seconds to wait for Siri before typing"
	MsgFlagDryRun   = "Print the AppleScript instead of running it"
	MsgFlagWrite    = "Write the file instead of printing it"
	MsgFlagForce    = "Overwrite an existing config file"
	MsgFlagPaths    = "Print the file locations instead of the configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/ping-long.txt
	msgPingLongRaw string
	MsgPingLong    = strings.TrimSpace(msgPingLongRaw)

	//go:embed msgs/ping-example.txt
	msgPingExampleRaw string
	MsgPingExample    = strings.TrimRight(msgPingExampleRaw, "\n")

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
