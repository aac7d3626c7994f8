// Package logger builds configured slog.Logger instances for the tool.
//
// The factory applies functional options over CLI-appropriate defaults: text
// format on stderr at warn level, so a plain run prints nothing but problems.
// Verbosity flags map onto WithLevel, and WithAttr attaches static attributes
// such as the per-run identifier to every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("run_id", runID)),
//	)
//	log.Info("codes ready", slog.Int("count", len(batch)))
package logger
