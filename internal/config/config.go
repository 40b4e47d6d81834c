// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists tuikit settings. Values come from
// defaults, tuikit.yaml, TUIKIT_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName    = "tuikit"
	fileName   = appName + ".yaml"
	legacyFile = "." + appName + ".yaml"
	envPrefix  = appName
)

// GetConfigPath returns the full path of the user or system config file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Tuikit")
		default:
			configDir = "/etc/" + appName
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, appName)
	}
	return filepath.Join(configDir, fileName), nil
}

// LoadConfig decodes configuration into T. When no config file exists the
// decoded value is still returned together with a
// viper.ConfigFileNotFoundError so callers can write a default file. An
// empty file counts as missing.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, path *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
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

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, err
		}
		notFound = err
	} else if info, err := os.Stat(v.ConfigFileUsed()); err == nil && info.Size() == 0 {
		notFound = viper.ConfigFileNotFoundError{}
	}

	mergeLegacyConfig(v)

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		enumHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&c, hooks); err != nil {
		return c, err
	}
	return c, notFound
}

// mergeLegacyConfig merges a .tuikit.yaml from the working directory on top
// of the primary file. Parse errors in it are ignored.
func mergeLegacyConfig(v *viper.Viper) {
	if _, err := os.Stat(legacyFile); err != nil {
		return
	}
	v.SetConfigFile(legacyFile)
	_ = v.MergeInConfig()
	v.SetConfigFile("")
}

// WriteConfigFile serialises c to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo serialises c to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, data, 0o644)
}
