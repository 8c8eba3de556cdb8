// Package config loads uconv settings.
//
// Values are resolved in this order, first match wins:
//
//  1. command-line flags bound to the viper instance
//  2. UCONV_* environment variables, including those loaded from .env files
//  3. the YAML config file ($XDG_CONFIG_HOME/uconv/config.yaml or --config)
//  4. built-in defaults
package config
