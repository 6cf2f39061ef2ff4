package sixpack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrymomot/sixpack/pkg/requestid"
)

const (
	// DefaultUserAgent identifies this client to the decision service. The
	// visitor's own user agent travels in the user_agent query parameter.
	DefaultUserAgent = "sixpack-go/1.0"

	maxBodySize = 1 << 20
)

// Transport performs the single GET issued per Session call. It returns
// the body and call metadata, or an error when no complete response was
// received. The call must be abandoned once timeout elapses.
type Transport interface {
	Get(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, CallMeta, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, CallMeta, error)

func (f TransportFunc) Get(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, CallMeta, error) {
	return f(ctx, rawURL, timeout)
}

// HTTPTransport is the default Transport over net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps client. A nil client gets a fresh *http.Client;
// the per-call timeout is applied through the request context, so the
// client's own Timeout can stay unset.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Get(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, CallMeta, error) {
	meta := CallMeta{URL: rawURL}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, meta, fmt.Errorf("%w: create request: %w", ErrTransport, err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "application/json")
	requestid.Propagate(ctx, req.Header)

	resp, err := t.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, meta, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, meta, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	meta.StatusCode = resp.StatusCode
	if resp.Request != nil && resp.Request.URL != nil {
		meta.URL = resp.Request.URL.String()
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, meta, fmt.Errorf("%w: read body: %w", ErrTimeout, err)
		}
		return nil, meta, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	return body, meta, nil
}
