package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const minSecretLength = 32

// Manager reads and writes cookies with shared defaults. Secrets are
// optional; without them only plain cookies are available.
type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a Manager. Empty secrets are dropped; every remaining secret
// must be at least 32 characters long. The first secret signs, all of them
// verify, so old cookies survive a key rotation.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	defaults = applyOptions(defaults, opts)

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
	}, nil
}

// CanSign reports whether the manager was configured with a secret.
func (m *Manager) CanSign() bool {
	return len(m.secrets) > 0
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if w == nil {
		return ErrNoResponseWriter
	}
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if options.MaxAge > 0 {
		// Expires for clients that ignore Max-Age
		cookie.Expires = time.Now().Add(time.Duration(options.MaxAge) * time.Second)
	}

	http.SetCookie(w, cookie)
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	if r == nil {
		return "", ErrCookieNotFound
	}
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	}
	http.SetCookie(w, cookie)
}

func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	signed, err := m.Sign(value)
	if err != nil {
		return err
	}
	return m.Set(w, name, signed, opts...)
}

func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	return m.Verify(signed)
}

// Sign returns value with an HMAC-SHA256 signature appended.
func (m *Manager) Sign(value string) (string, error) {
	if !m.CanSign() {
		return "", ErrNoSecret
	}
	mac := hmac.New(sha256.New, []byte(m.secrets[0]))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature, nil
}

// Verify checks a value produced by Sign against every configured secret
// and returns the original value.
func (m *Manager) Verify(signed string) (string, error) {
	if !m.CanSign() {
		return "", ErrNoSecret
	}
	encodedValue, signature, ok := strings.Cut(signed, "|")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range m.secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expectedSig := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		if subtle.ConstantTimeCompare([]byte(signature), []byte(expectedSig)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}
