package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sixpack/pkg/cookie"
)

func TestJar_ReadsRequestCookie(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sixpack_client_id", Value: "ABC"})

	jar := m.NewJar(httptest.NewRecorder(), req)
	got, err := jar.Get("sixpack_client_id")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	_, err = jar.Get("other")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestJar_SetWritesCookieAndRemembersValue(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	jar := m.NewJar(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, jar.Set("k", "v", 48*time.Hour, "/app"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "v", cookies[0].Value)
	assert.Equal(t, "/app", cookies[0].Path)
	assert.Equal(t, 48*60*60, cookies[0].MaxAge)

	got, err := jar.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestJar_NilWriter(t *testing.T) {
	t.Parallel()

	m, err := cookie.New(nil)
	require.NoError(t, err)

	jar := m.NewJar(nil, nil)
	assert.ErrorIs(t, jar.Set("k", "v", time.Hour, "/"), cookie.ErrNoResponseWriter)

	_, err = jar.Get("k")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestSignedJar(t *testing.T) {
	t.Parallel()

	plain, err := cookie.New(nil)
	require.NoError(t, err)
	_, err = plain.NewSignedJar(nil, nil)
	require.ErrorIs(t, err, cookie.ErrNoSecret)

	m, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	jar, err := m.NewSignedJar(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.NoError(t, jar.Set("id", "visitor", time.Hour, "/"))

	// Next request carries the signed cookie back.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	nextJar, err := m.NewSignedJar(httptest.NewRecorder(), next)
	require.NoError(t, err)
	got, err := nextJar.Get("id")
	require.NoError(t, err)
	assert.Equal(t, "visitor", got)

	// A forged plain cookie is rejected.
	forged := httptest.NewRequest(http.MethodGet, "/", nil)
	forged.AddCookie(&http.Cookie{Name: "id", Value: "visitor"})
	forgedJar, err := m.NewSignedJar(nil, forged)
	require.NoError(t, err)
	_, err = forgedJar.Get("id")
	assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
}
