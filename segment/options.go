// SPDX-License-Identifier: MIT

package segment

import (
	"io"
	"os"
	"os/user"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	panicNilLogger     = "segment: WithLogger: logger must not be nil"
	panicBadSampleRate = "segment: WithSampleRate: rate must be positive"
	panicNilClock      = "segment: WithClock: clock must not be nil"
)

// Option configures a Data value.
type Option func(*Options)

// Options holds the effective configuration of a Data value.
type Options struct {
	log        logrus.FieldLogger
	sampleRate float64  // 0 ⇒ unset
	labels     []string // nil ⇒ channel000, channel001, ...
	clock      func() time.Time
	user, host string // "" ⇒ current user and host
}

// WithLogger routes debug logs (segment materialization) to log.
// Panics on a nil logger.
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.log = log }
}

// WithSampleRate sets the number of rows per second, enabling Time.
// Panics on a non-positive rate.
func WithSampleRate(hz float64) Option {
	if !(hz > 0) {
		panic(panicBadSampleRate)
	}

	return func(o *Options) { o.sampleRate = hz }
}

// WithLabels names the columns of the matrix. New fails with ErrLabelCount
// unless there is exactly one label per column. The slice is copied.
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)

	return func(o *Options) { o.labels = cp }
}

// WithClock sets the time source stamped on provenance log entries.
// Panics on a nil clock.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicNilClock)
	}

	return func(o *Options) { o.clock = now }
}

// WithIdentity sets the user and host stamped on provenance log entries.
// Empty values fall back to the current user and host name.
func WithIdentity(username, host string) Option {
	return func(o *Options) { o.user, o.host = username, host }
}

func gatherOptions(opts ...Option) Options {
	o := Options{log: discardLogger(), clock: time.Now}
	for _, set := range opts {
		set(&o)
	}
	if o.user == "" {
		o.user = currentUser()
	}
	if o.host == "" {
		o.host = currentHost()
	}

	return o
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}

	return "unknown"
}

func currentHost() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}

	return "unknown"
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
