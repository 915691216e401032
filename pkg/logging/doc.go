// Package logging provides a process-wide structured logger for sqlscan.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. The loader, the
// CLI and the inspector obtain their loggers through this package so that log
// level and output destination are controlled from a single place. The lexer
// itself never logs.
//
// # Initialisation
//
// Call Init (or InitDefault for sensible defaults) once at program startup,
// before any goroutines that might call GetLogger are spawned:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug}); err != nil {
//	    log.Fatal(err)
//	}
//
// InitDefault writes WARN-level logs to stderr without a log file.
//
// # Retrieving the logger
//
//	logger := logging.GetLogger()
//	logger.Info("scan finished", "files", n)
//
// If GetLogger is called before Init, a default stderr logger is created
// lazily (via sync.Once) so that packages that log during init are safe.
//
// # Context helpers
//
//	log := logging.WithFile(path)         // adds file field
//	log := logging.WithComponent("ui")    // adds component field
//	log := logging.WithError(err)         // adds error field
package logging
