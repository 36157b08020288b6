package automation

import (
	"strconv"
	"strings"
)

const systemEvents = `tell application "System Events"`

// Script renders steps as an AppleScript program. Consecutive input steps
// share one System Events block; delays sit between blocks.
func Script(steps []Step) string {
	var b strings.Builder
	inBlock := false

	closeBlock := func() {
		if inBlock {
			b.WriteString("end tell\n")
			inBlock = false
		}
	}

	for _, step := range steps {
		switch {
		case step.IsInput():
			if !inBlock {
				b.WriteString(systemEvents + "\n")
				inBlock = true
			}
			b.WriteString("\t" + command(step) + "\n")
		case step.Kind == KindDelay:
			closeBlock()
			b.WriteString("delay " + formatSeconds(step.Duration) + "\n")
		}
	}
	closeBlock()

	return b.String()
}

func command(step Step) string {
	var cmd string
	if step.Kind == KindKeyCode {
		cmd = "key code " + strconv.Itoa(step.KeyCode)
	} else {
		cmd = "keystroke " + quote(step.Text)
	}
	if len(step.Modifiers) > 0 {
		cmd += " using {" + strings.Join(step.Modifiers, ", ") + "}"
	}
	return cmd
}

// quote renders s as an AppleScript string literal
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
