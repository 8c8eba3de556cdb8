package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the output handler for conversion results and messages.
// It supports plain, styled and JSON output and is safe for concurrent use.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool
	silent        bool

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Printf outputs formatted text without any semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Result outputs a successful conversion line.
func (p *Printer) Result(text string) {
	p.output(SemanticResult, text, true)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Warning outputs warning text.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs an error line.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Heading outputs a section heading.
func (p *Printer) Heading(text string) {
	p.output(SemanticHeading, text, true)
}

// Markdown renders markdown with glamour when styling is active and prints it.
// Plain, test and JSON modes, and auto mode without a color terminal, print the source unchanged.
func (p *Printer) Markdown(markdown string) {
	if p.rendersMarkdown() {
		rendered, err := RenderMarkdown(markdown, p.styleProvider.GetThemeType())
		if err == nil {
			p.output(SemanticMarkdown, rendered, true)
			return
		}
	}
	p.output(SemanticMarkdown, strings.TrimRight(markdown, "\n"), true)
}

func (p *Printer) rendersMarkdown() bool {
	if !p.IsStylable() {
		return false
	}
	switch p.mode {
	case ModeStyled:
		return true
	case ModeAuto:
		return ColorSupported()
	default:
		return false
	}
}

// output is the core output method that handles all rendering logic.
func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var finalText string

	switch p.mode {
	case ModeJSON:
		finalText = p.renderJSON(semantic, text)
	case ModeStyled:
		finalText = p.renderStyled(semantic, text, addNewline)
	default:
		finalText = p.renderText(semantic, text, addNewline)
	}

	_, _ = fmt.Fprint(p.writer, finalText) // Ignore write errors for output operations
}

// renderText renders text in plain or auto mode. Auto mode styles only on color terminals.
func (p *Printer) renderText(semantic SemanticType, text string, addNewline bool) string {
	var style TextStyle
	if p.mode == ModeAuto && p.IsStylable() && ColorSupported() {
		style = p.styleProvider.GetStyle(string(semantic))
	} else {
		style = NewPlainStyleProvider().GetStyle(string(semantic))
	}
	return finishLine(style.Render(text), addNewline)
}

// renderStyled renders text with forced styling.
func (p *Printer) renderStyled(semantic SemanticType, text string, addNewline bool) string {
	if p.IsStylable() {
		return finishLine(p.styleProvider.GetStyle(string(semantic)).Render(text), addNewline)
	}
	return p.renderText(semantic, text, addNewline)
}

// renderJSON renders output as one JSON object per line.
func (p *Printer) renderJSON(semantic SemanticType, text string) string {
	payload := map[string]interface{}{
		"type":    semantic,
		"message": strings.TrimRight(text, "\n"),
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return text + "\n"
	}
	return string(jsonBytes) + "\n"
}

func finishLine(text string, addNewline bool) string {
	if addNewline && !strings.HasSuffix(text, "\n") {
		return text + "\n"
	}
	return text
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}
