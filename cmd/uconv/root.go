package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"uconv/internal/config"
	"uconv/internal/logger"
	"uconv/internal/output"
	"uconv/internal/shell"
	"uconv/internal/units"
	"uconv/internal/version"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	envFiles   []string
	settings   *config.Settings
	printer    *output.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use:   "uconv",
		Short: "uconv - unit converter for length, weight and temperature",
		Long: `uconv converts a quantity between units of the same family.
Type requests such as "5 km to mi" or "100 c in f" at the prompt, or run them from a script.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.OutOrStdout())
		},
		RunE: a.runShell, // Default behavior is to run the interactive shell
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file [default: "+config.FilePath()+"]")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode")
	flags.StringP(config.KeyOutput, "o", output.ModeAuto.String(), "Output mode (auto|styled|plain|json)")
	flags.String(config.KeyTheme, output.DefaultThemeName, "Color theme")
	flags.IntP(config.KeyPrecision, "p", units.DefaultPrecision, "Significant digits in results (-1 for shortest exact)")

	// Bind flags to viper
	for _, key := range []string{config.KeyLogLevel, config.KeyLogFile, config.KeyTestMode, config.KeyOutput, config.KeyTheme, config.KeyPrecision} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			logger.Fatal("Failed to bind flag", "flag", key, "error", err)
		}
	}

	rootCmd.AddCommand(
		newShellCmd(a),
		newBatchCmd(a),
		newConvertCmd(a),
		newUnitsCmd(a),
		newVersionCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup resolves the configuration, then configures the logger and the printer.
func (a *app) setup(w io.Writer) error {
	settings, err := config.Load(a.v, config.Options{ConfigFile: a.configFile, EnvFiles: a.envFiles})
	if err != nil {
		return err
	}
	a.settings = settings

	if err := logger.Configure(settings.LogLevel, settings.LogFile, settings.TestMode); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	opts, err := printerOptions(w, settings)
	if err != nil {
		return err
	}
	output.ConfigureGlobal(opts...)
	a.printer = output.GetGlobalPrinter()

	if err := version.ValidateVersion(); err != nil {
		logger.Warn("Version check failed", "error", err)
	}

	logger.Debug("Configuration loaded", "config", settings.ConfigFile, "output", settings.Output, "theme", settings.Theme)
	return nil
}

// printerOptions builds the printer options matching the output mode and theme.
func printerOptions(w io.Writer, s *config.Settings) ([]output.Option, error) {
	opts := []output.Option{output.WithWriter(w)}

	switch {
	case s.Output == output.ModeJSON:
		opts = append(opts, output.JSON())
	case s.TestMode:
		opts = append(opts, output.TestMode())
	case s.Output == output.ModePlain:
		opts = append(opts, output.PlainText())
	default:
		theme, err := output.LoadTheme(s.Theme)
		if err != nil {
			return nil, fmt.Errorf("loading theme: %w", err)
		}
		opts = append(opts, output.WithStyles(theme), output.WithMode(s.Output))
	}

	return opts, nil
}

func (a *app) newSession(opts ...shell.Option) *shell.Session {
	defaults := []shell.Option{
		shell.WithPrinter(a.printer),
		shell.WithPrecision(a.settings.Precision),
	}
	return shell.NewSession(append(defaults, opts...)...)
}
