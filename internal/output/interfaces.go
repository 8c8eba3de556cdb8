// Package output provides the console output system for uconv.
// Conversion results and errors are written through a Printer, which renders them as plain text,
// themed text or JSON depending on its mode.
package output

import (
	"fmt"
	"strings"
)

// StyleProvider supplies styles for semantic output types.
// The printer depends only on this interface, not on a concrete theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider is ready to provide styles.
	IsAvailable() bool

	// GetThemeType returns the glamour style matching the theme ("dark", "light", "notty", "auto").
	GetThemeType() string
}

// TextStyle renders text with styling. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text ...string) string
}

// Mode defines the output modes the printer can operate in.
type Mode int

const (
	// ModeAuto styles output only when the terminal supports colors
	ModeAuto Mode = iota

	// ModeStyled forces styled output
	ModeStyled

	// ModePlain forces plain text output
	ModePlain

	// ModeJSON outputs one JSON object per line for machine consumption
	ModeJSON
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStyled:
		return "styled"
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// ParseMode parses a mode name as used in configuration files and flags.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return ModeAuto, nil
	case "styled", "color", "colour":
		return ModeStyled, nil
	case "plain", "text":
		return ModePlain, nil
	case "json":
		return ModeJSON, nil
	default:
		return ModeAuto, fmt.Errorf("unknown output mode %q (expected auto, styled, plain or json)", name)
	}
}

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticResult represents a successful conversion.
	SemanticResult SemanticType = "result"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents a failed conversion or bad input.
	SemanticError SemanticType = "error"
	// SemanticHeading represents section headings in listings.
	SemanticHeading SemanticType = "heading"
	// SemanticMarkdown represents pre-rendered markdown.
	SemanticMarkdown SemanticType = "markdown"
)
