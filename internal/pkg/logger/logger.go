// Package logger provides the leveled logger shared by every ETREE verb.
// Log lines go to stderr or a rotating file so that reports printed on
// stdout are never interleaved with diagnostics.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
