package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"uconv/internal/data/embedded"
	"uconv/internal/logger"
)

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "default"

// ThemeFile is the YAML layout of an embedded theme.
type ThemeFile struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Glamour     string                 `yaml:"glamour,omitempty"`
	Styles      map[string]StyleConfig `yaml:"styles"`
}

// StyleConfig describes the styling of one semantic type.
// Colors are either a plain string or a {light, dark} adaptive pair.
type StyleConfig struct {
	Foreground interface{} `yaml:"foreground,omitempty"`
	Background interface{} `yaml:"background,omitempty"`
	Bold       *bool       `yaml:"bold,omitempty"`
	Italic     *bool       `yaml:"italic,omitempty"`
	Underline  *bool       `yaml:"underline,omitempty"`
}

// Theme maps semantic types to lipgloss styles. It implements StyleProvider.
type Theme struct {
	Name        string
	Description string
	glamour     string
	styles      map[SemanticType]lipgloss.Style
}

// LoadTheme loads an embedded theme by name, ignoring case.
func LoadTheme(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultThemeName
	}

	data, err := embedded.ThemeData(name)
	if err != nil {
		return nil, err
	}
	return ParseTheme(data)
}

// ParseTheme builds a theme from YAML source.
func ParseTheme(data []byte) (*Theme, error) {
	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("theme file has no name")
	}

	theme := &Theme{
		Name:        file.Name,
		Description: file.Description,
		glamour:     file.Glamour,
		styles:      make(map[SemanticType]lipgloss.Style, len(file.Styles)),
	}
	for semantic, cfg := range file.Styles {
		style, err := createStyle(cfg)
		if err != nil {
			return nil, fmt.Errorf("theme %s, style %s: %w", file.Name, semantic, err)
		}
		theme.styles[SemanticType(semantic)] = style
	}

	logger.Debug("Theme loaded", "theme", theme.Name, "styles", len(theme.styles))
	return theme, nil
}

// AvailableThemes lists the embedded theme names.
func AvailableThemes() []string {
	return embedded.ThemeNames()
}

// GetStyle implements StyleProvider. Unstyled semantics render unchanged.
func (t *Theme) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[SemanticType(semantic)]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsAvailable implements StyleProvider.
func (t *Theme) IsAvailable() bool {
	return t != nil
}

// GetThemeType implements StyleProvider.
func (t *Theme) GetThemeType() string {
	if t.glamour == "" {
		return "auto"
	}
	return t.glamour
}

func createStyle(cfg StyleConfig) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	if cfg.Foreground != nil {
		color, err := parseColor(cfg.Foreground)
		if err != nil {
			return style, fmt.Errorf("foreground: %w", err)
		}
		style = style.Foreground(color)
	}
	if cfg.Background != nil {
		color, err := parseColor(cfg.Background)
		if err != nil {
			return style, fmt.Errorf("background: %w", err)
		}
		style = style.Background(color)
	}

	if cfg.Bold != nil && *cfg.Bold {
		style = style.Bold(true)
	}
	if cfg.Italic != nil && *cfg.Italic {
		style = style.Italic(true)
	}
	if cfg.Underline != nil && *cfg.Underline {
		style = style.Underline(true)
	}

	return style, nil
}

func parseColor(value interface{}) (lipgloss.TerminalColor, error) {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v), nil
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}, nil
		}
		return nil, fmt.Errorf("adaptive color needs both light and dark keys")
	default:
		return nil, fmt.Errorf("unsupported color value %v", value)
	}
}

// ColorSupported reports whether the terminal renders colors.
func ColorSupported() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}
