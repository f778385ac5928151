// Package logger defines a type for writing to logs.
package logger

import "fmt"

// Logf is the basic logger type: a printf-like func. Like [log.Printf], the
// format need not end in a newline. Logf functions must be safe for concurrent
// use.
type Logf func(format string, args ...any)

// Write implements the [io.Writer] interface.
func (f Logf) Write(p []byte) (n int, err error) {
	f("%s", p)
	return len(p), nil
}

// WithPrefix returns a Logf that prepends prefix to every message logged
// through f.
func (f Logf) WithPrefix(prefix string) Logf {
	return func(format string, args ...any) {
		f("%s%s", prefix, fmt.Sprintf(format, args...))
	}
}

// Discard is a Logf that throws away the logs given to it.
func Discard(string, ...any) {}
