// SPDX-License-Identifier: MPL-2.0

// Package jmh translates build properties into a JMH harness invocation.
//
// A Builder takes a flat Properties bag (the values a user passed with -P on the
// command line or through property files) and produces a Plan: the harness
// arguments handed to org.openjdk.jmh.Main, the launch arguments of the child
// JVM, and whether a help request replaced normal execution.
//
// Keys that are not recognized harness flags are dropped without error, so
// unrelated build properties can share the same bag. The output file flag is
// always emitted exactly once and is relocated under the build directory.
package jmh
