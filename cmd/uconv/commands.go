package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"uconv/internal/config"
	"uconv/internal/logger"
	"uconv/internal/output"
	"uconv/internal/shell"
	"uconv/internal/version"
)

// errConversionFailed signals a non-zero exit after the failure was already printed.
var errConversionFailed = errors.New("conversion failed")

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start interactive shell mode",
		Long:  `Start the interactive uconv shell. Type "help" for usage and "exit" to quit.`,
		Args:  cobra.NoArgs,
		RunE:  a.runShell,
	}
}

func (a *app) runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting uconv shell", "version", version.GetVersion())

	session := a.newSession()
	sh := shell.NewInteractive(session, shell.InteractiveConfig{
		Prompt:      a.settings.Prompt,
		HistoryFile: a.settings.HistoryFile,
		Banner: fmt.Sprintf("uconv v%s - unit converter\nType 'help' for usage or 'exit' to quit.",
			version.GetVersion()),
	})
	sh.Run()

	stats := session.Stats()
	logger.Debug("Shell finished", "session", session.ID(), "evaluated", stats.Evaluated, "failed", stats.Failed)
	return nil
}

func newBatchCmd(a *app) *cobra.Command {
	var strict, quiet bool

	cmd := &cobra.Command{
		Use:   "batch <script>",
		Short: "Evaluate conversion requests from a file, one per line",
		Long: `Evaluate a script of conversion requests without entering interactive mode.
Blank lines and lines starting with '#' are skipped, and "exit" ends the run.
Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd.InOrStdin(), args[0], strict, quiet)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with a non-zero status if any request fails")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing; only the exit status reports failures (with --strict)")
	return cmd
}

func (a *app) runBatch(stdin io.Reader, scriptPath string, strict, quiet bool) error {
	logger.Debug("Starting uconv batch mode", "version", version.GetVersion(), "script", scriptPath)

	r := stdin
	if scriptPath != "-" {
		file, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer file.Close()
		r = file
	}

	var opts []shell.Option
	if quiet {
		opts = append(opts, shell.WithPrinter(output.NewPrinter(output.Silent())))
	}

	session := a.newSession(opts...)
	if err := session.RunBatch(r); err != nil {
		logger.Error("Batch run failed", "script", scriptPath, "error", err)
		return err
	}

	if stats := session.Stats(); strict && stats.Failed > 0 {
		return fmt.Errorf("%d of %d requests failed: %w", stats.Failed, stats.Evaluated, errConversionFailed)
	}
	return nil
}

// convertArgs inserts "--" after the convert command when the quantity is negative,
// so "convert -40 c to f" is not read as a shorthand flag.
func convertArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if arg != "convert" {
			continue
		}
		if i+1 >= len(args) || !strings.HasPrefix(args[i+1], "-") {
			return args
		}
		if _, err := strconv.ParseFloat(args[i+1], 64); err != nil {
			return args
		}

		rewritten := make([]string, 0, len(args)+1)
		rewritten = append(rewritten, args[:i+1]...)
		rewritten = append(rewritten, "--")
		return append(rewritten, args[i+1:]...)
	}
	return args
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <quantity> <unit> <separator> <unit>",
		Short:   "Convert a single quantity",
		Example: "  uconv convert 5 km to mi\n  uconv convert 10 degrees Celsius in f",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			session := a.newSession()
			session.Evaluate(strings.Join(args, " "))
			if session.Stats().Failed > 0 {
				return errConversionFailed
			}
			return nil
		},
	}
}

func newUnitsCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "units [family...]",
		Short: "List supported units",
		Long:  `List supported units with their names and aliases, optionally restricted to some families.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.EqualFold(format, "text") {
				session := a.newSession()
				session.ListUnits(args...)
				return nil
			}

			families, err := shell.ParseFamilies(args)
			if err != nil {
				return err
			}
			session := a.newSession()
			return shell.WriteCatalog(cmd.OutOrStdout(), shell.Catalog(session.Registry(), families...), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Listing format (text|yaml|json)")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the version of uconv.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if detailed {
				output.Println(version.GetDetailedVersion())
				return nil
			}
			output.Println(version.GetFormattedVersion())
			return nil
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change the configuration file",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// the file being edited may not exist yet
			explicit := a.configFile
			if _, err := os.Stat(explicit); explicit != "" && errors.Is(err, fs.ErrNotExist) {
				a.configFile = ""
				defer func() { a.configFile = explicit }()
			}
			return a.setup(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			output.Println(a.configPath())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			for _, key := range config.Keys() {
				output.Printf("%s: %v\n", key, a.v.Get(key))
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a setting to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			path := a.configPath()

			// start from the file alone so flags and env do not leak into it
			fileConfig := viper.New()
			fileConfig.SetConfigFile(path)
			if err := fileConfig.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("reading config file %s: %w", path, err)
			}

			if err := config.Set(fileConfig, path, args[0], args[1]); err != nil {
				return err
			}
			output.Info(fmt.Sprintf("%s set to %q in %s", args[0], args[1], path))
			return nil
		},
	})

	return cmd
}

func (a *app) configPath() string {
	if a.configFile != "" {
		return a.configFile
	}
	return config.FilePath()
}
