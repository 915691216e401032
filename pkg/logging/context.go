package logging

import (
	"log/slog"
)

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("loader")
//	log.Debug("scanning batch", "files", len(paths))
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithFile creates a logger with source file context.
// Use this for per-file loading and scanning.
//
// Example:
//
//	log := logging.WithFile("queries/report.sql")
//	log.Debug("scanned", "tokens", len(seq))
func WithFile(path string) *slog.Logger {
	return GetLogger().With("file", path)
}

// WithError creates a logger with error context.
//
// Example:
//
//	log := logging.WithError(err)
//	log.Warn("scan failed", "offset", serr.Offset)
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
