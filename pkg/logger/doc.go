// Package logger provides a context-aware wrapper around Go's slog package
// with functional options, helper attribute constructors for split-testing
// calls, and transparent injection of values stored in context.Context.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format, then wraps it with LogHandlerDecorator, which runs any
// registered ContextExtractor before delegating to the underlying handler.
//
// Helper constructors such as Experiment, Endpoint and Duration live in
// attr.go and keep attribute naming consistent across the module.
//
// # Usage
//
//	import "github.com/dmitrymomot/sixpack/pkg/logger"
//
//	log := logger.New(
//	    logger.WithDevelopment("storefront"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	sess, _ := sixpack.New(sixpack.WithLogger(log))
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil:
//
//	log.Warn("sixpack call failed", logger.Error(err))
package logger
