// Package logger holds the process wide structured logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field names shared by all components.
const (
	FieldComponent = "component"
	FieldCorpus    = "corpus"
	FieldVersion   = "version"
	FieldFile      = "file"
	FieldDoc       = "doc"
	FieldIndex     = "index"
	FieldKind      = "kind"
	FieldLink      = "link"
	FieldCount     = "count"
	FieldError     = "error"
)

// Logger is a no-op until Initialize is called, so packages can log freely in
// tests and library use.
var Logger = zap.NewNop().Sugar()

// Initialize installs the global logger. Logs go to stderr; stdout is kept for
// view rows.
func Initialize(verbose, jsonOutput bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var config zap.Config
	if jsonOutput {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	l, err := config.Build()
	if err != nil {
		return err
	}

	Logger = l.Sugar()
	return nil
}

// ComponentLogger returns a logger named after a component.
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}

// Discard replaces the global logger with a no-op one.
func Discard() {
	Logger = zap.NewNop().Sugar()
}

// IsTerminal reports whether stderr is a character device.
func IsTerminal() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
