package mapper

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Language server log level names.
const (
	LogLevelVerbose = "Verbose"
	LogLevelNormal  = "Normal"
	LogLevelWarning = "Warning"
	LogLevelError   = "Error"
)

// NormalizeLogLevel returns the canonical spelling of a language server log level, or Normal when unknown.
func NormalizeLogLevel(level string) string {
	for _, known := range []string{LogLevelVerbose, LogLevelNormal, LogLevelWarning, LogLevelError} {
		if strings.EqualFold(level, known) {
			return known
		}
	}
	return LogLevelNormal
}

// LogLevelToZap maps a language server log level onto the zap level used for the session logger.
func LogLevelToZap(level string) zapcore.Level {
	switch NormalizeLogLevel(level) {
	case LogLevelVerbose:
		return zapcore.DebugLevel
	case LogLevelWarning:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
