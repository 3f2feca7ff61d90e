package skriptparse

import "log"

// Logger carries library-internal trace/debug output, distinct from the
// per-parse-attempt Sink (diagnostic.go): Logger is for "tried pattern 2
// of 5 candidates"-style tracing a host may want in its own log stream,
// Sink is for the user-facing warnings/errors one parse attempt produces.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type stubLogger struct{}
type fullLogger struct{}

// NewLogger is a hack to enable/disable debug tracing quickly without
// threading the flag through every call site.
func NewLogger(debug bool) Logger {
	if debug {
		return fullLogger{}
	}
	return stubLogger{}
}

func (stubLogger) Debugf(string, ...interface{}) {}

func (fullLogger) Debugf(format string, args ...interface{}) {
	log.Printf("skriptparse: "+format, args...)
}
