package sixpack_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sixpack"
	"github.com/dmitrymomot/sixpack/pkg/cookie"
	"github.com/dmitrymomot/sixpack/pkg/requestid"
)

// newHostApp is a web application using a Session per inbound request.
func newHostApp(t *testing.T, baseURL string) http.Handler {
	t.Helper()

	cookies, err := cookie.New(nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/landing", func(w http.ResponseWriter, r *http.Request) {
		s, err := sixpack.New(
			sixpack.WithBaseURL(baseURL),
			sixpack.WithRequest(r),
			sixpack.WithStore(cookies.NewJar(w, r)),
		)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		p, err := s.Participate(r.Context(), "headline", []string{"plain", "bold"})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_, _ = io.WriteString(w, p.Alternative())
	})
	return r
}

func TestHostApplication(t *testing.T) {
	t.Parallel()

	svc := newFakeService(t, http.StatusOK,
		`{"status":"ok","alternative":{"name":"bold"},"experiment":{"version":1,"name":"headline"},"client_id":"X"}`)
	app := newHostApp(t, svc.URL)

	// First visit.
	req := httptest.NewRequest(http.MethodGet, "/landing", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set(requestid.Header, "landing-1")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bold", rec.Body.String())

	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	clientID := set[0].Value

	call := svc.last(t)
	assert.Equal(t, "landing-1", call.Header.Get(requestid.Header))
	assert.Equal(t, clientID, call.URL.Query().Get("client_id"))
	assert.Equal(t, "203.0.113.7", call.URL.Query().Get("ip_address"))

	// Return visit keeps the identifier; forced alternative skips the service.
	req = httptest.NewRequest(http.MethodGet, "/landing?sixpack-force-headline=plain", nil)
	req.AddCookie(set[0])
	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, "plain", rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 1, svc.count())

	// Bad override is reported to the host.
	req = httptest.NewRequest(http.MethodGet, "/landing?sixpack-force-headline=italic", nil)
	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
