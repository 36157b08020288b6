package wheresmy

import (
	"os"
	"strings"

	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/types"
	"github.com/pterm/pterm"
)

// canPrompt reports whether add may fall back to interactive input
var canPrompt = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// DefaultDeviceName prefills the name prompt
const DefaultDeviceName = "iPhone"

// namePrompt is the text input used for the device name
func namePrompt() *pterm.InteractiveTextInputPrinter {
	return pterm.DefaultInteractiveTextInput.WithDefaultValue(DefaultDeviceName)
}

// promptDevice asks for a name and an icon. The icon selection lists the
// catalogue titles with the default icon preselected.
func promptDevice(icon string) (string, string, error) {
	name, err := namePrompt().Show(MsgPromptName)
	if err != nil {
		return "", "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read device name")
	}
	if strings.TrimSpace(name) == "" {
		return "", "", errors.New(errors.ErrInvalidInput, MsgErrMissingName)
	}

	if icon != "" {
		return name, icon, nil
	}

	catalogue := types.Icons()
	options := make([]string, len(catalogue))
	for i, entry := range catalogue {
		options[i] = entry.Title
	}

	defaultTitle := types.IconFor(types.DefaultIcon).Title
	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(defaultTitle).
		Show(MsgPromptIcon)
	if err != nil {
		return "", "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read icon")
	}

	resolved, ok := types.LookupIcon(selected)
	if !ok {
		return "", "", errors.Newf(errors.ErrInvalidInput, MsgErrUnknownIcon, selected)
	}
	return name, resolved.Token, nil
}
