// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// The file is looked up at <config dir>/jmhrun/config.cue (XDG on Linux,
// ~/Library/Application Support on macOS, %APPDATA% on Windows) and then at
// ./jmhrun.cue. It is validated against the embedded #Config schema before
// being merged over the defaults. JMHRUN_* environment variables override
// file values, for example JMHRUN_JAVA_HOME for java.home.
package config
