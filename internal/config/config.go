// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers for caesarcipher. It uses Viper for file/env/flag parsing and
// exposes utility functions to read/write configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName    = "caesarcipher"
	envPrefix  = "caesarcipher"
	configType = "yaml"
)

// Config holds the settings that may come from a file, the environment or
// flags. Per-invocation choices such as the mode and offset are flags only.
type Config struct {
	Alphabet    string `mapstructure:"alphabet" yaml:"alphabet"`
	Language    string `mapstructure:"language" yaml:"language"`
	Format      string `mapstructure:"format" yaml:"format"`
	InputFormat string `mapstructure:"input-format" yaml:"input-format"`
	Uppercase   bool   `mapstructure:"uppercase" yaml:"uppercase"`
	Exhaustive  bool   `mapstructure:"exhaustive" yaml:"exhaustive"`
	Verbose     bool   `mapstructure:"verbose" yaml:"verbose"`
}

// Defaults returns the built-in values used when nothing else is set.
func Defaults() map[string]any {
	return map[string]any{
		"alphabet":     "",
		"language":     "en",
		"format":       "text",
		"input-format": "text",
		"uppercase":    false,
		"exhaustive":   false,
		"verbose":      false,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Caesarcipher")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+"."+configType), nil
}

// LoadConfig resolves T from, in increasing precedence: defaults, the config
// file, CAESARCIPHER_* environment variables and flags the user changed on
// cmd. A missing config file is not an error unless path names one
// explicitly. The returned string is the config file that was read, if any.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, path *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType(configType)

	// An explicit file has the highest precedence among files.
	if path != nil {
		v.SetConfigFile(*path)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindChangedFlags(v, cmd.Flags()); err != nil {
		return c, "", err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", err
	}

	return c, v.ConfigFileUsed(), nil
}

// bindChangedFlags binds only the flags the user set, so a flag's own default
// never shadows a value from the config file or the environment.
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.Visit(func(f *pflag.Flag) {
		if bindErr == nil {
			bindErr = v.BindPFlag(f.Name, f)
		}
	})
	return bindErr
}

// WriteConfigFile stores c at the user or system config path and returns the
// path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigTo(c, path)
}

// WriteConfigTo stores c as YAML at path, creating parent directories.
func WriteConfigTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
