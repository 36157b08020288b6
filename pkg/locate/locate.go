// Package locate turns a device name into the input sequence that asks the
// voice assistant to find it: press the assistant shortcut, wait for the
// assistant, type the locate phrase, wait, press Return.
package locate

import (
	"context"
	"fmt"
	"time"

	"github.com/arthur-debert/wheresmy/pkg/automation"
	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/hotkey"
	"github.com/arthur-debert/wheresmy/pkg/logging"
	"github.com/rs/zerolog"
)

// PhraseDelay is the pause between typing the phrase and submitting it
const PhraseDelay = 300 * time.Millisecond

const phraseTemplate = "where's my %s"

// Config holds the user-tunable part of the sequence
type Config struct {
	// Shortcut invokes the assistant, e.g. "cmd+opt+f15"
	Shortcut string
	// ActivationDelay is how long the assistant takes to start listening
	ActivationDelay time.Duration
}

// Trigger builds and runs locate sequences
type Trigger struct {
	cfg    Config
	runner automation.Runner
	logger zerolog.Logger
}

// New creates a Trigger
func New(cfg Config, runner automation.Runner) *Trigger {
	return &Trigger{
		cfg:    cfg,
		runner: runner,
		logger: logging.GetLogger("locate"),
	}
}

// Phrase returns the text typed to the assistant for a device
func Phrase(deviceName string) string {
	return fmt.Sprintf(phraseTemplate, deviceName)
}

// ShortcutStep returns the step that performs a parsed shortcut: a key-code
// press for f13..f20, literal keystroke otherwise.
func ShortcutStep(spec hotkey.Spec) automation.Step {
	if spec.HasKeyCode {
		return automation.KeyCode(spec.KeyCode, spec.Modifiers...)
	}
	return automation.Keystroke(spec.Key, spec.Modifiers...)
}

// Sequence builds the steps for deviceName. The shortcut is parsed on every
// call so configuration errors surface before anything runs.
func (t *Trigger) Sequence(deviceName string) ([]automation.Step, error) {
	spec, err := hotkey.Parse(t.cfg.Shortcut)
	if err != nil {
		return nil, err
	}
	if t.cfg.ActivationDelay < 0 {
		return nil, errors.Newf(errors.ErrConfigInvalid, "activation delay cannot be negative: %s", t.cfg.ActivationDelay)
	}

	t.logger.Debug().
		Str("hotkey", spec.String()).
		Int("keyCode", spec.KeyCode).
		Msg("Shortcut resolved")

	return []automation.Step{
		ShortcutStep(spec),
		automation.Delay(t.cfg.ActivationDelay),
		automation.Keystroke(Phrase(deviceName)),
		automation.Delay(PhraseDelay),
		automation.KeyCode(hotkey.EnterKeyCode),
	}, nil
}

// Ping runs the locate sequence for deviceName and waits for it to finish.
// Shortcut errors are returned before the runner is touched; runner errors
// come back as AUTOMATION_FAILURE and are not retried.
func (t *Trigger) Ping(ctx context.Context, deviceName string) error {
	steps, err := t.Sequence(deviceName)
	if err != nil {
		t.logger.Error().Err(err).Str("shortcut", t.cfg.Shortcut).Msg("Invalid shortcut configuration")
		return err
	}

	done := logging.LogOperationStart(t.logger, "ping")
	defer done()

	t.logger.Info().
		Str("device", deviceName).
		Str("shortcut", t.cfg.Shortcut).
		Dur("delay", t.cfg.ActivationDelay).
		Msg("Pinging device")

	if err := t.runner.Run(ctx, steps); err != nil {
		if errors.IsErrorCode(err, errors.ErrAutomationFailure) {
			return err
		}
		return errors.Wrap(err, errors.ErrAutomationFailure, "automation failed")
	}
	return nil
}

// Start runs Ping on its own goroutine. The channel receives exactly one
// result and is then closed.
func (t *Trigger) Start(ctx context.Context, deviceName string) <-chan error {
	result := make(chan error, 1)
	go func() {
		defer close(result)
		result <- t.Ping(ctx, deviceName)
	}()
	return result
}
