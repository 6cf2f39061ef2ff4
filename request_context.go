package sixpack

import (
	"net/http"
	"net/url"
)

// RequestContext is the host application's current inbound request as
// seen by a Session: force overrides come from its query, visitor IP and
// user agent from its headers and peer address.
type RequestContext interface {
	Query() url.Values
	Header() http.Header
	RemoteAddr() string
}

// FromHTTPRequest adapts an *http.Request. A nil request yields an empty
// context.
func FromHTTPRequest(r *http.Request) RequestContext {
	if r == nil {
		return Inbound{}
	}
	return httpRequest{r: r}
}

type httpRequest struct {
	r *http.Request
}

func (h httpRequest) Query() url.Values {
	if h.r.URL == nil {
		return nil
	}
	return h.r.URL.Query()
}

func (h httpRequest) Header() http.Header { return h.r.Header }

func (h httpRequest) RemoteAddr() string { return h.r.RemoteAddr }

// Inbound is a literal RequestContext for callers without an
// *http.Request at hand, such as background jobs or tests.
type Inbound struct {
	Values  url.Values
	Headers http.Header
	Addr    string
}

func (i Inbound) Query() url.Values   { return i.Values }
func (i Inbound) Header() http.Header { return i.Headers }
func (i Inbound) RemoteAddr() string  { return i.Addr }
