// Package requestid carries a per-request correlation id through
// context.Context.
//
// Middleware reads X-Request-ID from the inbound request (or generates a
// UUID when it is missing or malformed) and stores it in the context.
// Propagate copies it onto outbound calls so the split-testing service's
// logs can be joined with the host application's, and LoggerExtractor
// plugs it into pkg/logger.
package requestid
