// SPDX-License-Identifier: MPL-2.0

package jmh

import (
	"slices"
	"strings"
)

// Harness flags that the Builder handles itself instead of passing through.
const (
	// FlagOutput selects the harness output file.
	FlagOutput = "-o"
	// FlagHelp makes the harness print its own usage.
	FlagHelp = "-h"
	// FlagJVMArgs carries launch arguments for the child JVM.
	FlagJVMArgs = "-jvmArgs"
	// FlagJVMArgsAppend carries launch arguments placed after FlagJVMArgs.
	FlagJVMArgsAppend = "-jvmArgsAppend"
	// FlagJVMArgsPrepend carries launch arguments placed before FlagJVMArgs.
	FlagJVMArgsPrepend = "-jvmArgsPrepend"

	// HelpProperty requests usage output. Any value, including "", counts.
	HelpProperty = "help"
)

type (
	// FlagInfo describes one harness flag.
	FlagInfo struct {
		Name        string
		Description string
	}

	// FlagSet is an immutable set of harness flag names.
	// The zero value behaves like DefaultFlagSet.
	FlagSet struct {
		names map[string]struct{}
	}
)

// harnessFlags mirrors the options accepted by org.openjdk.jmh.Main.
var harnessFlags = []FlagInfo{
	{"-bm", "benchmark mode (Throughput, AverageTime, SampleTime, SingleShotTime, All)"},
	{"-bs", "batch size: number of benchmark method calls per operation"},
	{"-e", "benchmarks to exclude from the run (regexp)"},
	{"-f", "how many times to fork a single benchmark"},
	{"-foe", "fail the harness on benchmark error"},
	{"-gc", "force GC between iterations"},
	{FlagHelp, "display the harness help"},
	{"-i", "number of measurement iterations"},
	{"-jvm", "JVM binary used for forked runs"},
	{FlagJVMArgs, "JVM arguments for the launcher JVM"},
	{FlagJVMArgsAppend, "JVM arguments appended after -jvmArgs"},
	{FlagJVMArgsPrepend, "JVM arguments prepended before -jvmArgs"},
	{"-l", "list the benchmarks that match a filter"},
	{"-lprof", "list profilers"},
	{"-lrf", "list machine-readable result formats"},
	{FlagOutput, "redirect human-readable output to a file in the build directory"},
	{"-p", "benchmark parameters (param=v1,v2)"},
	{"-prof", "use a profiler to collect additional data"},
	{"-r", "minimum time to spend at each measurement iteration"},
	{"-rf", "format type for machine-readable results"},
	{"-rff", "write machine-readable results to this file"},
	{"-si", "synchronize iterations"},
	{"-t", "number of worker threads"},
	{"-tg", "thread group distribution for asymmetric benchmarks"},
	{"-tu", "override time unit in benchmark results"},
	{"-v", "verbosity mode (SILENT, NORMAL, EXTRA)"},
	{"-wbs", "warmup batch size"},
	{"-wf", "how many warmup forks to make for a single benchmark"},
	{"-wi", "number of warmup iterations"},
	{"-wm", "warmup mode for warming up selected benchmarks"},
	{"-wmb", "warmup benchmarks to include in the run (regexp)"},
}

var reservedFlags = map[string]struct{}{
	FlagOutput:         {},
	FlagHelp:           {},
	HelpProperty:       {},
	FlagJVMArgs:        {},
	FlagJVMArgsAppend:  {},
	FlagJVMArgsPrepend: {},
}

var defaultFlagSet = func() FlagSet {
	names := make([]string, 0, len(harnessFlags))
	for _, f := range harnessFlags {
		names = append(names, f.Name)
	}
	return NewFlagSet(names...)
}()

// NewFlagSet builds a FlagSet from names. Blank names are ignored.
func NewFlagSet(names ...string) FlagSet {
	set := FlagSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		set.names[n] = struct{}{}
	}
	return set
}

// DefaultFlagSet returns the flags accepted by the JMH harness.
func DefaultFlagSet() FlagSet {
	return defaultFlagSet
}

// HarnessFlags returns the known harness flags with descriptions, sorted by name.
func HarnessFlags() []FlagInfo {
	out := slices.Clone(harnessFlags)
	slices.SortFunc(out, func(a, b FlagInfo) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// IsReserved reports whether name is handled by the Builder rather than passed through.
func IsReserved(name string) bool {
	_, ok := reservedFlags[name]
	return ok
}

// Contains reports whether name is in the set.
func (s FlagSet) Contains(name string) bool {
	_, ok := s.resolve().names[name]
	return ok
}

// Len returns the number of flags in the set.
func (s FlagSet) Len() int {
	return len(s.resolve().names)
}

// Names returns the flag names in sorted order.
func (s FlagSet) Names() []string {
	names := make([]string, 0, s.Len())
	for n := range s.resolve().names {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (s FlagSet) resolve() FlagSet {
	if s.names == nil {
		return defaultFlagSet
	}
	return s
}
