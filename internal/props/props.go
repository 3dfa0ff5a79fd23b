// SPDX-License-Identifier: MPL-2.0

// Package props collects build properties from the command line and from
// property files, replacing a build tool's ambient property bag with explicit
// sources.
package props

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmhrun/jmhrun/internal/jmh"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
)

// tomlPropertiesTable is the optional table a TOML profile can nest its properties in.
const tomlPropertiesTable = "properties"

var (
	// ErrEmptyKey is returned when an assignment has no property name.
	ErrEmptyKey = errors.New("empty property name")
	// ErrUnsupportedFormat is returned for property files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported property file format")
)

// InvalidAssignmentError reports a -P value that could not be parsed.
// It wraps ErrEmptyKey for errors.Is() compatibility.
type InvalidAssignmentError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidAssignmentError) Error() string {
	return fmt.Sprintf("invalid property assignment %q: expected key=value", e.Value)
}

// Unwrap returns ErrEmptyKey.
func (e *InvalidAssignmentError) Unwrap() error { return ErrEmptyKey }

// ParseAssignments parses key=value pairs as given to -P. The key ends at the
// first '='; a bare key has the empty value, so "-Phelp" sets help="".
func ParseAssignments(values []string) (jmh.Properties, error) {
	out := make(jmh.Properties, len(values))
	for _, raw := range values {
		key, value, _ := strings.Cut(raw, "=")
		if strings.TrimSpace(key) == "" {
			return nil, &InvalidAssignmentError{Value: raw}
		}
		out[key] = value
	}
	return out, nil
}

// LoadFile reads properties from path. The format follows the extension:
// .properties files use the Java properties syntax, .toml files use string
// keys at the top level or inside a [properties] table.
func LoadFile(path string) (jmh.Properties, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".properties":
		return loadJavaProperties(path)
	case ".toml":
		return loadTOML(path)
	default:
		return nil, fmt.Errorf("%w: %s (want .properties or .toml)", ErrUnsupportedFormat, path)
	}
}

// Merge combines layers into a new bag. Later layers win on conflicting keys.
func Merge(layers ...jmh.Properties) jmh.Properties {
	out := make(jmh.Properties)
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

func loadJavaProperties(path string) (jmh.Properties, error) {
	// Values like ${user.home} stay literal; the harness sees what was written.
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file %s: %w", path, err)
	}

	out := make(jmh.Properties, p.Len())
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		out[key] = v
	}
	return out, nil
}

func loadTOML(path string) (jmh.Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file %s: %w", path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse property file %s: %w", path, err)
	}

	if table, ok := doc[tomlPropertiesTable].(map[string]any); ok {
		doc = table
	}

	out := make(jmh.Properties, len(doc))
	for k, v := range doc {
		switch val := v.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("property file %s: key %q must be a scalar", path, k)
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out, nil
}
