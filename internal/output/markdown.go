package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// markdownWordWrap is the column width used for rendered markdown.
const markdownWordWrap = 80

// RenderMarkdown renders markdown for the terminal using the given glamour style
// ("auto", "dark", "light", "notty", ...).
func RenderMarkdown(markdown, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(markdownWordWrap)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown with style '%s': %w", style, err)
	}
	return rendered, nil
}
