package polysandbox

import (
	"fmt"
	"io"
	"log/slog"
)

// ResolveLogLevel maps a level name to a slog.Level.
func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// NewLogger returns a text logger writing to w at the named level.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	logLevel, err := ResolveLogLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler), nil
}
