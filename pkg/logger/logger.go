// Package logger wraps charmbracelet/log for the cronparse CLI. Loggers are
// meant to write to stderr so stdout only ever carries parse results.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLogLevel names the environment variable holding the log level.
const EnvLogLevel = "CRONPARSE_LOG_LEVEL"

// Logger is a wrapper around charmbracelet/log.Logger
type Logger struct {
	*log.Logger
}

// New builds a logger writing to w at the named level.
func New(w io.Writer, level string) *Logger {
	return &Logger{
		Logger: log.NewWithOptions(w, log.Options{
			Level:           ParseLevel(level),
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "cronparse",
		}),
	}
}

// ParseLevel maps a level name to a log.Level. Unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// SetLogLevel sets the log level from a string
func (l *Logger) SetLogLevel(level string) {
	l.SetLevel(ParseLevel(level))
	l.Debug("Log level set", "level", level)
}

// ConfigureFromEnv applies CRONPARSE_LOG_LEVEL, falling back to debug
// logging when ENV=dev.
func (l *Logger) ConfigureFromEnv() {
	if logLevelEnv := os.Getenv(EnvLogLevel); logLevelEnv != "" {
		l.SetLogLevel(logLevelEnv)
	} else if os.Getenv("ENV") == "dev" {
		l.SetLevel(log.DebugLevel)
		l.Debug("Debug logging enabled from ENV=dev")
	}
}
