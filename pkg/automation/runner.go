package automation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/arthur-debert/wheresmy/pkg/errors"
	"github.com/arthur-debert/wheresmy/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner executes a step sequence strictly in order. A failure anywhere is
// reported once; steps that already ran are not undone.
type Runner interface {
	Run(ctx context.Context, steps []Step) error
}

// OsascriptRunner runs sequences through osascript
type OsascriptRunner struct {
	// Command is the osascript binary
	Command string
	// Timeout bounds one invocation; zero means none
	Timeout time.Duration
	logger  zerolog.Logger
}

// NewOsascriptRunner creates a runner for the given osascript binary
func NewOsascriptRunner(command string, timeout time.Duration) *OsascriptRunner {
	if command == "" {
		command = "osascript"
	}
	return &OsascriptRunner{
		Command: command,
		Timeout: timeout,
		logger:  logging.GetLogger("automation.osascript"),
	}
}

// Run renders the steps into one script and passes it to osascript on stdin
func (r *OsascriptRunner) Run(ctx context.Context, steps []Step) error {
	if len(steps) == 0 {
		return nil
	}

	script := Script(steps)

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Command, "-")
	cmd.Stdin = strings.NewReader(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug().
		Str("command", r.Command).
		Int("steps", len(steps)).
		Str("script", script).
		Msg("Running automation script")

	start := time.Now()
	err := cmd.Run()

	if stdout.Len() > 0 {
		r.logger.Debug().Str("output", stdout.String()).Msg("osascript stdout")
	}

	if err != nil {
		r.logger.Error().
			Err(err).
			Str("command", r.Command).
			Str("stderr", stderr.String()).
			Msg("Automation script failed")

		return errors.Wrapf(err, errors.ErrAutomationFailure, "failed to run %s", r.Command).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}

	r.logger.Info().
		Dur("duration", time.Since(start)).
		Msg("Automation script completed")
	return nil
}

// DryRun writes the script it would run instead of running it
type DryRun struct {
	Out io.Writer
}

// Run prints the rendered script
func (d DryRun) Run(ctx context.Context, steps []Step) error {
	_, err := fmt.Fprint(d.Out, Script(steps))
	return err
}

// Recorder keeps every sequence it is asked to run and returns Err
type Recorder struct {
	mu   sync.Mutex
	runs [][]Step
	Err  error
}

// Run records the steps
func (r *Recorder) Run(ctx context.Context, steps []Step) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recorded := make([]Step, len(steps))
	copy(recorded, steps)
	r.runs = append(r.runs, recorded)
	return r.Err
}

// Runs returns the recorded sequences in call order
func (r *Recorder) Runs() [][]Step {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]Step, len(r.runs))
	copy(out, r.runs)
	return out
}
