package logger

import corelogger "github.com/kilianp07/tripsched/core/logger"

// Logger mirrors the core logger interface for convenience.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods. Useful as a default in
// wiring and in tests that do not care about output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// New returns a Logger for the given component. The output format is chosen
// from the APP_ENV environment variable: "dev" selects a human-readable
// console writer, anything else structured JSON on stderr.
func New(component string) Logger {
	return NewZerologLogger(component)
}
