package embedded

import _ "embed"

// HelpMarkdown is the help text shown by the interactive "help" command.
//
//go:embed help/help.md
var HelpMarkdown string
