// SPDX-License-Identifier: MPL-2.0

package jmh

import (
	"slices"
	"testing"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		props Properties
		flags FlagSet
		want  []string
	}{
		{
			name:  "nil properties",
			props: nil,
			want:  nil,
		},
		{
			name:  "only unrelated keys",
			props: Properties{"org.gradle.parallel": "true", "group": "com.example"},
			want:  nil,
		},
		{
			name:  "mixed keys sorted",
			props: Properties{"-wi": "1", "version": "2", "-i": "3", "help": "", "-o": "x"},
			want:  []string{"-i", "-o", "-wi"},
		},
		{
			name:  "custom flag set",
			props: Properties{"-wi": "1", "-i": "3"},
			flags: NewFlagSet("-i"),
			want:  []string{"-i"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Filter(tt.props, tt.flags); !slices.Equal(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropertiesAccessors(t *testing.T) {
	t.Parallel()

	p := Properties{"help": "", "-i": "5"}

	if !p.Has("help") {
		t.Error("Has(help) = false for empty value")
	}
	if p.Has("-wi") {
		t.Error("Has(-wi) = true for missing key")
	}
	if v, ok := p.Get("-i"); !ok || v != "5" {
		t.Errorf("Get(-i) = %q, %v; want 5, true", v, ok)
	}
	if want := []string{"-i", "help"}; !slices.Equal(p.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", p.Keys(), want)
	}

	c := p.Clone()
	c["-i"] = "9"
	if p["-i"] != "5" {
		t.Error("Clone() shares storage with the original")
	}

	var nilProps Properties
	if nilProps.Clone() == nil {
		t.Error("Clone() of nil returned nil")
	}
}
