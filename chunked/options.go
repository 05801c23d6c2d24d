// SPDX-License-Identifier: MIT

// Package chunked: functional configuration for VirtualMatrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.

package chunked

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLinearScan selects the chunk lookup strategy. false ⇒ binary
	// search over the sorted row-range table; true ⇒ linear scan.
	// Both return the same chunk; chunk counts are small either way.
	DefaultLinearScan = false
)

const panicNilLogger = "chunked: WithLogger: logger must not be nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	log        logrus.FieldLogger // debug logging of assembly and copies
	linearScan bool               // DefaultLinearScan
}

// WithLogger routes debug logs (assembly, cross-chunk copies) to log.
// Panics on a nil logger (programmer error).
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.log = log }
}

// WithLinearScan locates chunks by scanning the row-range table front to back.
func WithLinearScan() Option {
	return func(o *Options) { o.linearScan = true }
}

// WithBinarySearch locates chunks by binary search (default).
func WithBinarySearch() Option {
	return func(o *Options) { o.linearScan = false }
}

// gatherOptions applies user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		log:        discardLogger(),
		linearScan: DefaultLinearScan,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// discardLogger returns a logrus logger that drops everything.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
