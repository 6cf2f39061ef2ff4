package cookie

import (
	"net/http"
	"time"
)

// Jar binds a Manager to a single request/response pair and exposes a
// plain key-value view over its cookies. Values written through the jar
// are visible to later reads on the same jar, so several consumers within
// one request observe the same value before the browser echoes it back.
//
// A Jar is scoped to one request and is not safe for concurrent use.
type Jar struct {
	m       *Manager
	w       http.ResponseWriter
	r       *http.Request
	signed  bool
	written map[string]string
}

// NewJar creates a jar over w and r. Either may be nil: a nil request
// reads as empty, a nil writer makes Set fail with ErrNoResponseWriter.
func (m *Manager) NewJar(w http.ResponseWriter, r *http.Request) *Jar {
	return &Jar{m: m, w: w, r: r, written: make(map[string]string)}
}

// NewSignedJar is like NewJar but signs values on write and verifies them
// on read. Requires a manager with at least one secret.
func (m *Manager) NewSignedJar(w http.ResponseWriter, r *http.Request) (*Jar, error) {
	if !m.CanSign() {
		return nil, ErrNoSecret
	}
	j := m.NewJar(w, r)
	j.signed = true
	return j, nil
}

// Get returns the cookie value for key or ErrCookieNotFound.
func (j *Jar) Get(key string) (string, error) {
	if v, ok := j.written[key]; ok {
		return v, nil
	}
	if j.signed {
		return j.m.GetSigned(j.r, key)
	}
	return j.m.Get(j.r, key)
}

// Set writes a cookie that lives for ttl under path. A zero ttl produces a
// session cookie.
func (j *Jar) Set(key, value string, ttl time.Duration, path string) error {
	opts := []Option{WithMaxAge(int(ttl / time.Second))}
	if path != "" {
		opts = append(opts, WithPath(path))
	}

	var err error
	if j.signed {
		err = j.m.SetSigned(j.w, key, value, opts...)
	} else {
		err = j.m.Set(j.w, key, value, opts...)
	}
	if err != nil {
		return err
	}

	j.written[key] = value
	return nil
}
