// SPDX-License-Identifier: MPL-2.0

package jmh

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputFileName is the harness output file written under the build
// directory when no -o property is given.
const DefaultOutputFileName = "jmh-output.txt"

type (
	// Environment holds the facts about the build that the Builder needs
	// besides the properties themselves.
	Environment struct {
		// BuildDir is where harness output is written. Caller-supplied -o
		// values are resolved relative to it.
		BuildDir string
		// OutputFileName overrides DefaultOutputFileName when set.
		OutputFileName string
		// Flags is the set of accepted harness flags. The zero value means DefaultFlagSet.
		Flags FlagSet
		// Stdout receives the usage text on help requests. nil means os.Stdout.
		Stdout io.Writer
	}

	// Plan is the outcome of translating one Properties bag.
	Plan struct {
		// Args are the harness command-line tokens.
		Args []string
		// JVMArgs are the launch arguments of the child JVM. They never appear in Args.
		JVMArgs []string
		// Help is true when a help request replaced the normal arguments.
		Help bool
		// OutputFile is the resolved -o path. Empty for help plans.
		OutputFile string
	}

	// Builder turns Properties into a Plan for a fixed Environment.
	Builder struct {
		env Environment
	}
)

// NewBuilder creates a Builder for env.
func NewBuilder(env Environment) *Builder {
	if env.OutputFileName == "" {
		env.OutputFileName = DefaultOutputFileName
	}
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	return &Builder{env: env}
}

// DefaultOutputPath returns the output file used when -o is not set.
func (b *Builder) DefaultOutputPath() string {
	return filepath.Join(b.env.BuildDir, b.env.OutputFileName)
}

// Build translates props into a Plan. props is not modified.
//
// Pass-through flags are emitted in flag-name order, each immediately
// followed by its value. A help request is checked last and replaces every
// other harness argument with the single -h flag.
func (b *Builder) Build(props Properties) *Plan {
	plan := &Plan{}

	for _, flag := range Filter(props, b.env.Flags) {
		if IsReserved(flag) {
			continue
		}
		plan.Args = append(plan.Args, flag, props[flag])
	}

	plan.OutputFile = b.resolveOutput(props)
	plan.Args = append(plan.Args, FlagOutput, plan.OutputFile)

	if props.Has(HelpProperty) || props.Has(FlagHelp) {
		writeUsage(b.env.Stdout, b.DefaultOutputPath())
		plan.Args = []string{FlagHelp}
		plan.Help = true
		plan.OutputFile = ""
	}

	plan.JVMArgs = JVMArgs(props)
	return plan
}

// resolveOutput returns the -o path and makes sure its parent directory exists.
func (b *Builder) resolveOutput(props Properties) string {
	path := b.outputPath(props)

	// Failure here surfaces later when the harness opens the file.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Warn("could not create output directory", "path", filepath.Dir(path), "error", err)
	}
	return path
}

// outputPath places a caller-supplied -o value under the build directory,
// falling back to the default output file.
func (b *Builder) outputPath(props Properties) string {
	if name, ok := props.Get(FlagOutput); ok {
		return filepath.Join(b.env.BuildDir, name)
	}
	return b.DefaultOutputPath()
}

// JVMArgs extracts the child JVM launch arguments from props: the
// whitespace-separated tokens of -jvmArgsPrepend, -jvmArgs and -jvmArgsAppend,
// in that order. The result is empty when none are set.
func JVMArgs(props Properties) []string {
	args := []string{}
	for _, key := range []string{FlagJVMArgsPrepend, FlagJVMArgs, FlagJVMArgsAppend} {
		if v, ok := props.Get(key); ok {
			args = append(args, strings.Fields(v)...)
		}
	}
	return args
}
