// Package hotkey parses the configured assistant shortcut.
//
// A shortcut is written as modifier tokens followed by one key, joined by
// "+", e.g. "cmd+opt+f15". Known modifier abbreviations are expanded to
// their System Events names; anything else passes through untouched. The
// function keys f13 to f20 resolve to macOS virtual key codes. Any other
// function key is a configuration error, and every other key is typed as
// literal text.
package hotkey

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/wheresmy/pkg/errors"
)

// EnterKeyCode is the virtual key code of Return
const EnterKeyCode = 36

var modifierNames = map[string]string{
	"cmd":   "command",
	"ctrl":  "control",
	"opt":   "option",
	"shift": "shift",
}

var functionKeyCodes = map[string]int{
	"f13": 105,
	"f14": 107,
	"f15": 113,
	"f16": 106,
	"f17": 64,
	"f18": 79,
	"f19": 80,
	"f20": 90,
}

var functionKeyPattern = regexp.MustCompile(`^[fF][0-9]+$`)

// Spec is a parsed shortcut
type Spec struct {
	// Modifiers are System Events qualifiers in input order, e.g. "command down"
	Modifiers []string
	// Key is the terminal token as configured
	Key string
	// KeyCode is set when HasKeyCode is true
	KeyCode    int
	HasKeyCode bool
}

// ModifierName maps a modifier token to its System Events name. Unknown
// tokens are returned unchanged.
func ModifierName(token string) string {
	if name, ok := modifierNames[strings.ToLower(token)]; ok {
		return name
	}
	return token
}

// FunctionKeyCode returns the key code for f13..f20, case-insensitively
func FunctionKeyCode(key string) (int, bool) {
	code, ok := functionKeyCodes[strings.ToLower(key)]
	return code, ok
}

// Parse parses a shortcut string such as "cmd+opt+f15".
func Parse(shortcut string) (Spec, error) {
	if strings.TrimSpace(shortcut) == "" {
		return Spec{}, errors.New(errors.ErrConfigInvalid, "shortcut is empty")
	}

	parts := strings.Split(shortcut, "+")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return Spec{}, errors.Newf(errors.ErrConfigInvalid, "shortcut %q has an empty component", shortcut).
				WithDetail("shortcut", shortcut)
		}
	}

	key := parts[len(parts)-1]
	spec := Spec{
		Modifiers: make([]string, 0, len(parts)-1),
		Key:       key,
	}
	for _, token := range parts[:len(parts)-1] {
		spec.Modifiers = append(spec.Modifiers, ModifierName(token)+" down")
	}

	if code, ok := FunctionKeyCode(key); ok {
		spec.KeyCode = code
		spec.HasKeyCode = true
		return spec, nil
	}

	if functionKeyPattern.MatchString(key) {
		return Spec{}, errors.Newf(errors.ErrUnsupportedKey,
			"unsupported function key: %s (only f13-f20 are supported)", key).
			WithDetail("key", key).
			WithDetail("shortcut", shortcut)
	}

	return spec, nil
}

// String renders the spec back in shortcut syntax
func (s Spec) String() string {
	parts := make([]string, 0, len(s.Modifiers)+1)
	for _, m := range s.Modifiers {
		parts = append(parts, strings.TrimSuffix(m, " down"))
	}
	return strings.Join(append(parts, s.Key), "+")
}
