package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Middleware accepts a well-formed inbound X-Request-ID or generates a new
// one, echoes it on the response and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValid(requestID) {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}
