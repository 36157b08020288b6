package automation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StepKind identifies the action a Step performs
type StepKind string

const (
	// KindKeyCode presses a key by virtual key code
	KindKeyCode StepKind = "key_code"
	// KindKeystroke types literal text
	KindKeystroke StepKind = "keystroke"
	// KindDelay waits for Duration
	KindDelay StepKind = "delay"
)

// Step is one automation action. Modifiers hold System Events qualifiers
// such as "command down" and apply to key-code and keystroke steps.
type Step struct {
	Kind      StepKind      `json:"kind"`
	KeyCode   int           `json:"keyCode,omitempty"`
	Text      string        `json:"text,omitempty"`
	Modifiers []string      `json:"modifiers,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// KeyCode builds a key-code press step
func KeyCode(code int, modifiers ...string) Step {
	return Step{Kind: KindKeyCode, KeyCode: code, Modifiers: normalize(modifiers)}
}

// Keystroke builds a literal text step
func Keystroke(text string, modifiers ...string) Step {
	return Step{Kind: KindKeystroke, Text: text, Modifiers: normalize(modifiers)}
}

// normalize keeps "no modifiers" as nil so steps compare equal
func normalize(modifiers []string) []string {
	if len(modifiers) == 0 {
		return nil
	}
	out := make([]string, len(modifiers))
	copy(out, modifiers)
	return out
}

// Delay builds a wait step
func Delay(d time.Duration) Step {
	return Step{Kind: KindDelay, Duration: d}
}

// IsInput reports whether the step injects input (as opposed to waiting)
func (s Step) IsInput() bool {
	return s.Kind == KindKeyCode || s.Kind == KindKeystroke
}

// String describes the step for logs and dry runs
func (s Step) String() string {
	switch s.Kind {
	case KindKeyCode:
		return "press key code " + strconv.Itoa(s.KeyCode) + modifierSuffix(s.Modifiers)
	case KindKeystroke:
		return fmt.Sprintf("type %q", s.Text) + modifierSuffix(s.Modifiers)
	case KindDelay:
		return "wait " + formatSeconds(s.Duration) + "s"
	default:
		return string(s.Kind)
	}
}

func modifierSuffix(modifiers []string) string {
	if len(modifiers) == 0 {
		return ""
	}
	return " with " + strings.Join(modifiers, ", ")
}

// formatSeconds renders a duration as decimal seconds without trailing zeros
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
