package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sixpack/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates new request ID when not provided", func(t *testing.T) {
		t.Parallel()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, requestid.FromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "abc-123_x", requestid.FromContext(r.Context()))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "abc-123_x")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123_x", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed request IDs", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"test request id", "a/b", "<script>"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(requestid.Header, bad)
			rec := httptest.NewRecorder()
			requestid.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

			got := rec.Header().Get(requestid.Header)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, bad, got)
		}
	})
}

func TestPropagate(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	assert.False(t, requestid.Propagate(context.Background(), h))
	assert.Empty(t, h.Get(requestid.Header))

	ctx := requestid.WithContext(context.Background(), "req-1")
	assert.True(t, requestid.Propagate(ctx, h))
	assert.Equal(t, "req-1", h.Get(requestid.Header))

	assert.False(t, requestid.Propagate(ctx, nil))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	ex := requestid.LoggerExtractor()
	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(requestid.WithContext(context.Background(), "req-2"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-2", attr.Value.String())
}

func TestFromContext_Nil(t *testing.T) {
	t.Parallel()
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, requestid.FromContext(nil))
}
