// Package logger builds configured log/slog loggers with functional options.
//
// The factory defaults to production-safe settings (JSON handler, info
// level, stdout) and can be tuned per environment:
//
//	log := logger.New(
//		logger.WithService("newskit"),
//		logger.WithDevelopment(),
//	)
//	logger.SetAsDefault(log)
//
// Standardized attribute constructors (Error, NewsletterID, Recipient) keep
// field names consistent across packages so log aggregation queries do not
// have to chase spelling variants.
package logger
