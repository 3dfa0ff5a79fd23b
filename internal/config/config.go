// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jmhrun/jmhrun/internal/classpath"
	"github.com/jmhrun/jmhrun/internal/issue"
	"github.com/jmhrun/jmhrun/internal/jmh"
	"github.com/jmhrun/jmhrun/internal/runner"
	"github.com/jmhrun/jmhrun/internal/watch"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "jmhrun"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// LocalConfigFile is looked up in the working directory when the user config is absent.
	LocalConfigFile = AppName + "." + ConfigFileExt
	// EnvPrefix prefixes environment overrides (JMHRUN_JAVA_HOME, JMHRUN_UI_VERBOSE, ...).
	EnvPrefix = "JMHRUN"
	// DefaultBuildDir is where harness output goes when project.build_dir is unset.
	DefaultBuildDir = "build"
)

// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the jmhrun configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			BuildDir:   DefaultBuildDir,
			Classpath:  append([]string(nil), classpath.DefaultEntries...),
			OutputFile: jmh.DefaultOutputFileName,
		},
		Runner: RunnerConfig{
			MainClass: runner.DefaultMainClass,
		},
		Properties: map[string]string{},
		Watch: WatchConfig{
			Patterns: append([]string(nil), watch.DefaultPatterns...),
			Debounce: "500ms",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Locate returns the config file that loading with opts would read, or ""
// when none exists. An explicit ConfigFilePath that does not exist is an error.
func Locate(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath)
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	if p := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt); fileExists(p) {
		return p, nil
	}
	if p := filepath.Join(opts.WorkDir, LocalConfigFile); fileExists(p) {
		return p, nil
	}
	return "", nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	path, err := Locate(opts)
	if err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Use 'jmhrun config dump' to see the default configuration").
			Wrap(err).
			BuildError()
	}

	v := newViper()
	properties := map[string]string{}
	if path != "" {
		properties, err = loadCUEIntoViper(v, path)
		if err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'jmhrun config init' to write a fresh file").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Properties = properties

	if ok, errs := cfg.IsValid(); !ok {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Durations use Go syntax such as 30s or 10m").
			Wrap(errors.Join(errs...)).
			BuildError()
	}

	return &cfg, path, nil
}

// newViper returns a Viper seeded with every default so env overrides are
// recognized for each key.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("java.home", defaults.Java.Home)
	v.SetDefault("java.binary", defaults.Java.Binary)
	v.SetDefault("project.build_dir", defaults.Project.BuildDir)
	v.SetDefault("project.classpath", defaults.Project.Classpath)
	v.SetDefault("project.output_file", defaults.Project.OutputFile)
	v.SetDefault("runner.main_class", defaults.Runner.MainClass)
	v.SetDefault("runner.timeout", defaults.Runner.Timeout)
	v.SetDefault("watch.patterns", defaults.Watch.Patterns)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	return v
}

func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper validates the file against #Config and merges it into v.
// The properties table is returned separately with its keys untouched.
func loadCUEIntoViper(v *viper.Viper, path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := decodeCUE(data, path)
	if err != nil {
		return nil, err
	}

	properties := map[string]string{}
	if raw, ok := configMap["properties"].(map[string]any); ok {
		for k, val := range raw {
			properties[k] = fmt.Sprint(val)
		}
	}
	delete(configMap, "properties")

	if err := v.MergeConfigMap(configMap); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}
	return properties, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default config file into configDirPath (or
// ConfigDir when empty). An existing file is left untouched and created is false.
func CreateDefaultConfig(configDirPath string) (path string, created bool, err error) {
	cfgDir, err := configDirWithOverride(configDirPath)
	if err != nil {
		return "", false, err
	}
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	path = filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(path) {
		return path, false, nil
	}

	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}
