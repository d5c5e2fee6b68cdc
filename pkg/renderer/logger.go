package renderer

import "log"

// DefaultLogger writes through the standard library logger
type DefaultLogger struct{}

// NewDefaultLogger creates a logger backed by the log package
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{}
}

// Printf logs a formatted message
func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
