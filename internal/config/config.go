package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"uconv/internal/logger"
	"uconv/internal/output"
	"uconv/internal/units"
)

const (
	appName   = "uconv"
	envPrefix = "UCONV"
	fileName  = "config"
	fileType  = "yaml"
)

// Setting keys, shared by flags, environment variables and the config file.
const (
	KeyLogLevel    = "log-level"
	KeyLogFile     = "log-file"
	KeyTestMode    = "test-mode"
	KeyOutput      = "output"
	KeyTheme       = "theme"
	KeyPrecision   = "precision"
	KeyPrompt      = "prompt"
	KeyHistoryFile = "history-file"
)

// maxPrecision is the largest number of significant digits a float64 carries.
const maxPrecision = 17

// Settings is the resolved configuration.
type Settings struct {
	LogLevel    string
	LogFile     string
	TestMode    bool
	Output      output.Mode
	Theme       string
	Precision   int
	Prompt      string
	HistoryFile string

	// ConfigFile is the file the settings were read from, empty when none was found.
	ConfigFile string
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit config path; it must exist when set.
	ConfigFile string
	// EnvFiles are .env files loaded into the environment; missing files are skipped.
	EnvFiles []string
}

// Dir returns the uconv configuration directory.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", "."+appName)
		}
		return filepath.Join(home, ".config", appName)
	}
	return filepath.Join(base, appName)
}

// FilePath returns the default config file path.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// DefaultEnvFiles returns the .env files consulted when none are given.
func DefaultEnvFiles() []string {
	return []string{".env", filepath.Join(Dir(), ".env")}
}

// New returns a viper instance with uconv defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)
	v.SetDefault(KeyOutput, output.ModeAuto.String())
	v.SetDefault(KeyTheme, output.DefaultThemeName)
	v.SetDefault(KeyPrecision, units.DefaultPrecision)
	v.SetDefault(KeyPrompt, appName+"> ")
	v.SetDefault(KeyHistoryFile, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads .env files and the config file into v and returns the validated settings.
func Load(v *viper.Viper, opts Options) (*Settings, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = DefaultEnvFiles()
	}
	loadEnvFiles(envFiles)

	configFile, err := readConfigFile(v, opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	mode, err := output.ParseMode(v.GetString(KeyOutput))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", KeyOutput, err)
	}

	precision := v.GetInt(KeyPrecision)
	if precision < -1 || precision == 0 || precision > maxPrecision {
		return nil, fmt.Errorf("config %s: %d out of range (1-%d, or -1 for shortest)", KeyPrecision, precision, maxPrecision)
	}

	theme := strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme)))
	if !contains(output.AvailableThemes(), theme) {
		return nil, fmt.Errorf("config %s: unknown theme %q (available: %s)", KeyTheme, theme, strings.Join(output.AvailableThemes(), ", "))
	}

	s := &Settings{
		LogLevel:    v.GetString(KeyLogLevel),
		LogFile:     v.GetString(KeyLogFile),
		TestMode:    v.GetBool(KeyTestMode),
		Output:      mode,
		Theme:       theme,
		Precision:   precision,
		Prompt:      v.GetString(KeyPrompt),
		HistoryFile: expandHome(v.GetString(KeyHistoryFile)),
		ConfigFile:  configFile,
	}
	return s, nil
}

// loadEnvFiles loads each file into the environment. Missing files are skipped silently,
// unreadable or malformed ones with a warning.
func loadEnvFiles(files []string) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("Skipping unreadable env file", "path", f, "error", err)
			}
			continue
		}
		logger.Debug("Loaded env file", "path", f)
	}
}

func readConfigFile(v *viper.Viper, explicit string) (string, error) {
	path := explicit
	if path == "" {
		path = FilePath()
	}

	v.SetConfigFile(path)
	v.SetConfigType(fileType)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file %s: %w", path, err)
	}

	logger.Debug("Loaded config file", "path", path)
	return path, nil
}

// Set writes a key-value pair to the config file at path, creating it if needed.
func Set(v *viper.Viper, path, key, value string) error {
	if !contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if path == "" {
		path = FilePath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(path), err)
	}

	v.Set(key, value)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Keys lists the settings that may appear in the config file, sorted.
func Keys() []string {
	keys := []string{KeyLogLevel, KeyLogFile, KeyTestMode, KeyOutput, KeyTheme, KeyPrecision, KeyPrompt, KeyHistoryFile}
	sort.Strings(keys)
	return keys
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
