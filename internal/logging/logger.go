// Package logging wires the platform's structured logging: JSON lines on
// stdout, fanned out to a Postgres handler that persists ERROR and worse
// to system_logs for the moderator dashboard.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON logger as the slog default. The
// Postgres handler is attached later, once the database is up.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
