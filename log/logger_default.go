package log

import (
	"io"
	"os"

	"github.com/unixv11/build/types"
)

var defaultLogger *Logger

// Make sure default logger instantiated by default.
func init() {
	defaultLogger = New(os.Stdout)
}

// InitDefault creates default logger for package-level logging access.
func InitDefault(output io.Writer, config *types.Config) {
	defaultLogger = New(output)

	if config == nil {
		return
	}

	if config.ShowDebug {
		defaultLogger.SetDebug(true)
		defaultLogger.SetWarn(true)
		defaultLogger.SetInfo(true)
	}

	if config.ShowWarnings {
		defaultLogger.SetWarn(true)
	}

	if config.Verbose {
		defaultLogger.SetInfo(true)
	}
}

// Info logs info-level message using default logger.
func Info(a ...interface{}) {
	defaultLogger.Info(a...)
}

// Infof logs info-level formatted message using default logger.
func Infof(format string, a ...interface{}) {
	defaultLogger.Infof(format, a...)
}

// Warn logs warning-level message using default logger.
func Warn(a ...interface{}) {
	defaultLogger.Warn(a...)
}

// Warnf logs warning-level formatted message using default logger.
func Warnf(format string, a ...interface{}) {
	defaultLogger.Warnf(format, a...)
}

// Errorf logs error-level formatted string message using default logger.
func Errorf(format string, a ...interface{}) {
	defaultLogger.Errorf(format, a...)
}

// Error logs error-level message using default logger.
func Error(err error) {
	defaultLogger.Error(err)
}

// Fatal logs error-level message using default logger then calls os.Exit(1).
func Fatal(format string, a ...interface{}) {
	defaultLogger.Errorf(format, a...)
	os.Exit(1)
}

// Debug logs debug-level message using default logger.
func Debug(a ...interface{}) {
	defaultLogger.Debug(a...)
}

// Debugf logs debug-level formatted message using default logger.
func Debugf(format string, a ...interface{}) {
	defaultLogger.Debugf(format, a...)
}
