package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// Propagate copies the request id carried by ctx onto an outbound header
// set. It reports whether a header was written.
func Propagate(ctx context.Context, h http.Header) bool {
	id := FromContext(ctx)
	if id == "" || h == nil {
		return false
	}
	h.Set(Header, id)
	return true
}

// LoggerExtractor returns a logger.ContextExtractor compatible function
// adding request_id to every record logged with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return slog.String("request_id", requestID), true
		}
		return slog.Attr{}, false
	}
}

func isValid(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
