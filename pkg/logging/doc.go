// Package logging provides structured logging configuration for the
// wildmatch CLI.
//
// The package wraps log/slog with a small Config: a minimum level, a text
// or json output format, and an optional second sink that receives a copy
// of every record (used for --log-file).
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("matching value", "file", path, "context", ctx)
//
// The matcher packages themselves never log; only the CLI does, so a
// command without logging flags runs with logging.Nop().
package logging
