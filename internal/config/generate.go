// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"slices"
	"strings"
)

// GenerateCUE renders cfg as a config file accepted by the #Config schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// jmhrun configuration file\n")
	sb.WriteString("// Environment variables prefixed with JMHRUN_ override these values.\n\n")

	if cfg.Java.Home != "" || cfg.Java.Binary != "" {
		sb.WriteString("java: {\n")
		if cfg.Java.Home != "" {
			fmt.Fprintf(&sb, "\thome: %q\n", cfg.Java.Home)
		}
		if cfg.Java.Binary != "" {
			fmt.Fprintf(&sb, "\tbinary: %q\n", cfg.Java.Binary)
		}
		sb.WriteString("}\n\n")
	}

	sb.WriteString("project: {\n")
	fmt.Fprintf(&sb, "\tbuild_dir: %q\n", cfg.Project.BuildDir)
	writeList(&sb, "classpath", cfg.Project.Classpath)
	fmt.Fprintf(&sb, "\toutput_file: %q\n", cfg.Project.OutputFile)
	sb.WriteString("}\n")

	sb.WriteString("\nrunner: {\n")
	fmt.Fprintf(&sb, "\tmain_class: %q\n", cfg.Runner.MainClass)
	if cfg.Runner.Timeout != "" {
		fmt.Fprintf(&sb, "\ttimeout: %q\n", cfg.Runner.Timeout)
	}
	sb.WriteString("}\n")

	if len(cfg.Properties) > 0 {
		sb.WriteString("\nproperties: {\n")
		keys := make([]string, 0, len(cfg.Properties))
		for k := range cfg.Properties {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "\t%q: %q\n", k, cfg.Properties[k])
		}
		sb.WriteString("}\n")
	}

	sb.WriteString("\nwatch: {\n")
	writeList(&sb, "patterns", cfg.Watch.Patterns)
	fmt.Fprintf(&sb, "\tdebounce: %q\n", cfg.Watch.Debounce)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

func writeList(sb *strings.Builder, name string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(sb, "\t%s: []\n", name)
		return
	}
	fmt.Fprintf(sb, "\t%s: [\n", name)
	for _, item := range items {
		fmt.Fprintf(sb, "\t\t%q,\n", item)
	}
	sb.WriteString("\t]\n")
}
