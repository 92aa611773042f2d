// Package config loads cronparse CLI settings from flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment,
// e.g. CRONPARSE_LOG_LEVEL.
const EnvPrefix = "CRONPARSE"

// Keys and the flags bound to them.
const (
	KeyLogLevel = "log_level"
	KeyNoColor  = "no_color"

	FlagLogLevel = "log-level"
	FlagNoColor  = "no-color"
)

// Config holds the resolved CLI settings. An empty LogLevel leaves the
// level to the logger's environment defaults.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	NoColor  bool   `mapstructure:"no_color"`
}

// Load resolves the configuration. Precedence, highest first: flags that
// were set explicitly, environment, config file, defaults.
//
// When configFile is empty, cronparse.{yaml,toml,json} is looked up in the
// working directory and the user config directory, and a missing file is
// not an error.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("cronparse")
		v.AddConfigPath(".")
		if userConfigDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(userConfigDir, "cronparse"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{KeyLogLevel: FlagLogLevel, KeyNoColor: FlagNoColor} {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
