package sixpack_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sixpack"
)

const participateOK = `{"status":"ok","alternative":{"name":"blue"},"experiment":{"version":1,"name":"button-color"},"client_id":"ABC"}`

// fakeService is a decision service answering every endpoint with a fixed
// status and body, recording the requests it receives.
type fakeService struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func newFakeService(t *testing.T, status int, body string) *fakeService {
	t.Helper()

	f := &fakeService{}
	handler := func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(context.Background()))
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}

	r := chi.NewRouter()
	r.Get("/participate", handler)
	r.Get("/convert", handler)
	r.Get("/_status", handler)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeService) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeService) last(t *testing.T) *http.Request {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the service")
	return f.requests[len(f.requests)-1]
}

// countingTransport fails the test on use unless allowed, and counts calls.
type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) Get(_ context.Context, rawURL string, _ time.Duration) ([]byte, sixpack.CallMeta, error) {
	c.calls.Add(1)
	return []byte(participateOK), sixpack.CallMeta{StatusCode: http.StatusOK, URL: rawURL}, nil
}

func newSession(t *testing.T, opts ...sixpack.Option) *sixpack.Session {
	t.Helper()

	s, err := sixpack.New(opts...)
	require.NoError(t, err)
	return s
}
