// Package logger provides the process-wide structured logger.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.New(os.Stdout).With().Timestamp().Logger()
	loggerLock sync.RWMutex
)

// Setup configures output and level. Development gets a console writer, everything else JSON lines.
func Setup(development bool, level string) {
	var out io.Writer = os.Stdout
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	SetOutput(out)
	SetLevel(level)
}

// SetOutput replaces the log destination, keeping the current level.
func SetOutput(w io.Writer) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = zerolog.New(w).Level(logger.GetLevel()).With().Timestamp().Logger()
}

// SetLevel sets the global log level at runtime.
func SetLevel(levelStr string) {
	loggerLock.Lock()
	logger = logger.Level(parseLevel(levelStr))
	loggerLock.Unlock()
}

func parseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	l := logger
	return &l
}

func Debug() *zerolog.Event { return current().Debug() }

func Info() *zerolog.Event { return current().Info() }

func Warn() *zerolog.Event { return current().Warn() }

func Error() *zerolog.Event { return current().Error() }

// Fatal logs and exits the process.
func Fatal() *zerolog.Event { return current().Fatal() }

// Logger returns a copy of the underlying zerolog.Logger for integrations.
func Logger() zerolog.Logger { return *current() }

// WithRequestID returns a context carrying a logger that stamps every entry with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	l := current().With().Str("request_id", requestID).Logger()
	return l.WithContext(ctx)
}

// Ctx returns the logger stored in ctx, or the process logger when there is none.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return current()
}
