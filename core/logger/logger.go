// Package logger defines the logging interface consumed by the infra and
// command layers. The schedule core never logs or prints; only the layers
// around it take a Logger.
package logger

// Logger exposes logging methods for common severity levels.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
