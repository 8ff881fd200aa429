// Package logger builds *slog.Logger instances with consistent defaults and
// helper attribute constructors.
//
// New applies functional options (format, level, static attributes, context
// extractors) and wraps the chosen slog handler with LogHandlerDecorator,
// which pulls request-scoped values such as the request id out of
// context.Context on every Handle call.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "signupform"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form submitted", logger.Form("signup"))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
