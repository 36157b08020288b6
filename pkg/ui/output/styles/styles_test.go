package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wheresmy/pkg/ui/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	require.NoError(t, styles.LoadStyles("styles.yaml"))

	expectedStyles := []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Bold", "Muted", "DeviceName", "DeviceID", "Icon",
		"AddHint", "Phrase", "Shortcut", "NoContent",
	}

	for _, name := range expectedStyles {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestStyleAttributes(t *testing.T) {
	require.NoError(t, styles.LoadStyles("styles.yaml"))

	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.True(t, styles.GetStyle("AddHint").GetItalic())
	assert.Equal(t, 1, styles.GetStyle("Icon").GetPaddingRight())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.False(t, style.GetBold())
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStyles_Errors(t *testing.T) {
	err := styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("styles: [unclosed"), 0644))
	assert.Error(t, styles.LoadStyles(bad))
}

func TestLoadStylesFromData(t *testing.T) {
	data := []byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#FF0000"
styles:
  Alert:
    bold: true
    foreground: red
`)
	require.NoError(t, styles.LoadStylesFromData(data))
	t.Cleanup(func() { _ = styles.LoadStyles("styles.yaml") })

	assert.True(t, styles.GetStyle("Alert").GetBold())
	_, exists := styles.StyleRegistry["Header"]
	assert.False(t, exists, "loading replaces the registry")
}

func TestRender_NoColor(t *testing.T) {
	require.NoError(t, styles.LoadStyles("styles.yaml"))
	styles.DisableColor()

	assert.Equal(t, "AirPods", styles.Render("DeviceID", "AirPods"))
}
