package testutil

import "log/slog"

// DiscardLogger returns a slog.Logger that discards all output. Use it in
// tests to reduce noise; for components taking the internal/log alias, prefer
// log.NewNop() directly.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
