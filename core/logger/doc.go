// Package logger provides a structured logging facility based on Zap.
//
// Development ("debug") and production configurations are supported, with either
// console or JSON encoding. Logs always go to stderr because the compare command
// prints its report on stdout.
//
// # Context Awareness
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the log
// entry, so every log line of one HTTP reconciliation can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Reconciliation complete", zap.Int("corrupted", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Reconciliation failed", zap.Error(err))
package logger
