package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, `# shortcut = "cmd+opt+f15"`)
	assert.Contains(t, content, "# activation_delay = 1.0")
	assert.Contains(t, content, "\n[automation]\n")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line should be commented: %q", line)
	}
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# note\n\n[section]\nkey = 1\n  indented = \"x\"\n"
	want := "# note\n\n[section]\n# key = 1\n#   indented = \"x\"\n"
	assert.Equal(t, want, commentOutConfigValues(in))
}
