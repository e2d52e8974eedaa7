// Package logger declares the logging contracts components depend on, so that
// they never import a concrete logging library directly.
package logger

// Lite is enough for most components: key/value info, warn and error lines.
type Lite interface {
	Infow(msg string, args ...any)
	Warnw(msg string, args ...any)
	Errorw(msg string, err any, args ...any)
}

// Full adds debug and fatal lines plus process-level flushing.
type Full interface {
	Lite

	Debugw(msg string, args ...any)
	Fatalw(msg string, err any, args ...any)
	Sync()
}
