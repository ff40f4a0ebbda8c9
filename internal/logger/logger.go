package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Options configures the process logger. File is optional; when set, output
// is also written to a size-rotated file.
type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the singleton logger at the given level, writing to stdout only.
// Only the first call to Get or Init configures it.
func Get(level string) *Logger {
	return Init(Options{Level: level})
}

// Init returns the singleton logger built from opts on first use.
func Init(opts Options) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(opts)
	})
	return globalLogger
}
