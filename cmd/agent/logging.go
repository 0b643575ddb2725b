package main

import (
    "io"
    "log/slog"
    "strings"
)

// newLogger builds the process logger from config and installs it as the
// slog default.
func newLogger(output io.Writer, level, format string) *slog.Logger {
    opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
    var handler slog.Handler
    switch strings.ToLower(strings.TrimSpace(format)) {
    case "json":
        handler = slog.NewJSONHandler(output, opts)
    default:
        handler = slog.NewTextHandler(output, opts)
    }
    logger := slog.New(handler)
    slog.SetDefault(logger)
    return logger
}

func parseLogLevel(level string) slog.Level {
    switch strings.ToLower(strings.TrimSpace(level)) {
    case "debug":
        return slog.LevelDebug
    case "warn", "warning":
        return slog.LevelWarn
    case "error":
        return slog.LevelError
    default:
        return slog.LevelInfo
    }
}
