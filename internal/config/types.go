// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDuration is returned when a DurationString does not parse or is negative.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidFilePath is returned when a FilePath value is whitespace-only.
	ErrInvalidFilePath = errors.New("invalid file path")
	// ErrInvalidMainClass is returned when a MainClass is not a qualified Java class name.
	ErrInvalidMainClass = errors.New("invalid main class")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError and schema failures.
	ErrInvalidConfig = errors.New("invalid config")
)

var mainClassPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// DurationString is a Go duration such as "90s" or "1h30m".
	// The zero value ("") means no duration is set.
	DurationString string

	// InvalidDurationError is returned when a DurationString is malformed or negative.
	InvalidDurationError struct {
		Value DurationString
		Err   error
	}

	// FilePath is a filesystem path. The zero value means "not set";
	// a whitespace-only value is invalid.
	FilePath string

	// InvalidFilePathError is returned when a FilePath value is whitespace-only.
	InvalidFilePathError struct {
		Value FilePath
	}

	// MainClass is a fully qualified Java class name.
	MainClass string

	// InvalidMainClassError is returned when a MainClass is not a qualified class name.
	InvalidMainClassError struct {
		Value MainClass
	}

	// InvalidConfigError collects the field errors of a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		Java    JavaConfig    `json:"java" mapstructure:"java"`
		Project ProjectConfig `json:"project" mapstructure:"project"`
		Runner  RunnerConfig  `json:"runner" mapstructure:"runner"`
		// Properties are default harness properties. They are decoded straight
		// from the file because viper folds map keys to lower case and harness
		// flags such as -jvmArgs are case-sensitive.
		Properties map[string]string `json:"properties" mapstructure:"-"`
		Watch      WatchConfig       `json:"watch" mapstructure:"watch"`
		UI         UIConfig          `json:"ui" mapstructure:"ui"`
	}

	// JavaConfig selects the java launcher.
	JavaConfig struct {
		// Home is a JDK directory; its bin/java is used.
		Home FilePath `json:"home" mapstructure:"home"`
		// Binary is an explicit java executable and wins over Home.
		Binary FilePath `json:"binary" mapstructure:"binary"`
	}

	// ProjectConfig describes the benchmark build layout.
	ProjectConfig struct {
		// BuildDir receives harness output (default "build").
		BuildDir FilePath `json:"build_dir" mapstructure:"build_dir"`
		// Classpath entries are relative to the working directory and may be doublestar globs.
		Classpath []string `json:"classpath" mapstructure:"classpath"`
		// OutputFile is the default harness output file name inside BuildDir.
		OutputFile FilePath `json:"output_file" mapstructure:"output_file"`
	}

	// RunnerConfig configures the child JVM launch.
	RunnerConfig struct {
		MainClass MainClass      `json:"main_class" mapstructure:"main_class"`
		Timeout   DurationString `json:"timeout" mapstructure:"timeout"`
	}

	// WatchConfig configures --watch mode.
	WatchConfig struct {
		Patterns []string       `json:"patterns" mapstructure:"patterns"`
		Debounce DurationString `json:"debounce" mapstructure:"debounce"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
	}
)

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: c}}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the DurationString is empty or a non-negative Go duration.
func (d DurationString) IsValid() (bool, []error) {
	if d == "" {
		return true, nil
	}
	v, err := time.ParseDuration(string(d))
	if err != nil {
		return false, []error{&InvalidDurationError{Value: d, Err: err}}
	}
	if v < 0 {
		return false, []error{&InvalidDurationError{Value: d, Err: errors.New("must not be negative")}}
	}
	return true, nil
}

// Duration returns the parsed duration, or zero when unset or invalid.
func (d DurationString) Duration() time.Duration {
	v, err := time.ParseDuration(string(d))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Error implements the error interface.
func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration %q: %v", e.Value, e.Err)
}

// Unwrap returns ErrInvalidDuration for errors.Is() compatibility.
func (e *InvalidDurationError) Unwrap() error { return ErrInvalidDuration }

// IsValid returns whether the FilePath is empty or has non-whitespace content.
func (p FilePath) IsValid() (bool, []error) {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidFilePathError) Error() string {
	return fmt.Sprintf("invalid file path %q: must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidFilePath for errors.Is() compatibility.
func (e *InvalidFilePathError) Unwrap() error { return ErrInvalidFilePath }

// IsValid returns whether the MainClass is empty or a dotted Java identifier.
func (m MainClass) IsValid() (bool, []error) {
	if m == "" || mainClassPattern.MatchString(string(m)) {
		return true, nil
	}
	return false, []error{&InvalidMainClassError{Value: m}}
}

// Error implements the error interface.
func (e *InvalidMainClassError) Error() string {
	return fmt.Sprintf("invalid main class %q: expected a fully qualified class name", e.Value)
}

// Unwrap returns ErrInvalidMainClass for errors.Is() compatibility.
func (e *InvalidMainClassError) Unwrap() error { return ErrInvalidMainClass }

// IsValid validates every typed field of the Config.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	check := func(valid bool, fieldErrs []error) {
		if !valid {
			errs = append(errs, fieldErrs...)
		}
	}

	check(c.Java.Home.IsValid())
	check(c.Java.Binary.IsValid())
	check(c.Project.BuildDir.IsValid())
	check(c.Project.OutputFile.IsValid())
	check(c.Runner.MainClass.IsValid())
	check(c.Runner.Timeout.IsValid())
	check(c.Watch.Debounce.IsValid())
	check(c.UI.ColorScheme.IsValid())

	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig and the field errors, so errors.Is() matches
// both the umbrella sentinel and the per-field ones.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
