package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTheme_Embedded(t *testing.T) {
	for _, name := range []string{"default", "dark", "light", "plain"} {
		t.Run(name, func(t *testing.T) {
			theme, err := LoadTheme(name)
			require.NoError(t, err)
			assert.Equal(t, name, theme.Name)
			assert.True(t, theme.IsAvailable())
			assert.NotEmpty(t, theme.GetThemeType())
		})
	}
}

func TestLoadTheme_DefaultsAndCase(t *testing.T) {
	theme, err := LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeName, theme.Name)

	theme, err = LoadTheme("  DARK ")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Name)
	assert.Equal(t, "dark", theme.GetThemeType())
}

func TestLoadTheme_Unknown(t *testing.T) {
	_, err := LoadTheme("neon")
	assert.Error(t, err)
}

func TestAvailableThemes(t *testing.T) {
	assert.Equal(t, []string{"dark", "default", "light", "plain"}, AvailableThemes())
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte(`
name: custom
styles:
  error:
    foreground: "9"
    bold: true
  result:
    foreground:
      light: "#000000"
      dark: "#FFFFFF"
`))
	require.NoError(t, err)
	assert.Equal(t, "custom", theme.Name)
	assert.Equal(t, "auto", theme.GetThemeType())

	// Unstyled semantics fall back to an empty style that leaves text untouched
	assert.Equal(t, "heading", theme.GetStyle("heading").Render("heading"))
}

func TestParseTheme_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":         "name: [unclosed",
		"missing name":     "styles: {}",
		"half adaptive":    "name: x\nstyles:\n  error:\n    foreground:\n      light: \"1\"\n",
		"unsupported type": "name: x\nstyles:\n  error:\n    foreground: [1, 2]\n",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTheme([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestPrinterWithPlainTheme(t *testing.T) {
	theme, err := LoadTheme("plain")
	require.NoError(t, err)

	output := CaptureOutputWithStyles(theme, func(p *Printer) {
		p.Result("1.0 meter is 100.0 centimeters")
	})
	assert.Equal(t, "1.0 meter is 100.0 centimeters\n", output)
}
