// SPDX-License-Identifier: MPL-2.0

package jmh

import (
	"maps"
	"slices"
)

// Properties is a bag of build properties keyed by name.
// Keys of interest look like harness flags ("-i", "-wi", "-o") plus "help".
type Properties map[string]string

// Has reports whether key is present, regardless of its value.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Keys returns all property names in sorted order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	maps.Copy(out, p)
	return out
}

// Filter returns the property names that are harness flags in flags,
// sorted by name. Everything else is discarded; an empty result is valid.
func Filter(props Properties, flags FlagSet) []string {
	var candidates []string
	for key := range props {
		if flags.Contains(key) {
			candidates = append(candidates, key)
		}
	}
	slices.Sort(candidates)
	return candidates
}
