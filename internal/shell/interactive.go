package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/ishell/v2"
)

// InteractiveConfig holds the ishell settings for an interactive session.
type InteractiveConfig struct {
	Prompt      string
	HistoryFile string
	Banner      string
}

// NewInteractive builds an ishell shell that feeds every line to the session.
// Lines matching no built-in command are treated as conversion requests.
func NewInteractive(session *Session, cfg InteractiveConfig) *ishell.Shell {
	sh := ishell.New()
	sh.SetPrompt(cfg.Prompt)
	if cfg.HistoryFile != "" {
		if dir := filepath.Dir(cfg.HistoryFile); !isDir(dir) {
			session.Printer().Warning(fmt.Sprintf("history directory %s does not exist, history will not be saved", dir))
		} else {
			sh.SetHistoryPath(cfg.HistoryFile)
		}
	}

	// "exit" is handled as a conversion-loop sentinel and "help" renders our own guide
	sh.DeleteCmd("exit")
	sh.DeleteCmd("help")

	sh.AddCmd(&ishell.Cmd{
		Name: "help",
		Help: "show usage and supported units",
		Func: func(c *ishell.Context) {
			session.Help()
		},
	})
	sh.AddCmd(&ishell.Cmd{
		Name: "units",
		Help: "list supported units, optionally for one family: units [length|weight|temperature]",
		Func: func(c *ishell.Context) {
			session.ListUnits(c.Args...)
		},
	})

	sh.NotFound(func(c *ishell.Context) {
		ProcessInput(session, c.RawArgs, c.Stop)
	})
	sh.EOF(func(c *ishell.Context) {
		c.Stop()
	})

	if cfg.Banner != "" {
		sh.Println(cfg.Banner)
	}

	return sh
}

// ProcessInput evaluates the raw arguments of one shell line and calls stop when the
// session should end.
func ProcessInput(session *Session, rawArgs []string, stop func()) {
	if len(rawArgs) == 0 {
		return
	}

	rawInput := strings.TrimSpace(strings.Join(rawArgs, " "))
	if !session.Evaluate(rawInput) {
		stop()
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
