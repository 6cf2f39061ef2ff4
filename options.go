package sixpack

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// settings collects Option values before a Session is built.
type settings struct {
	cfg            Config
	ctx            context.Context
	store          Store
	request        RequestContext
	transport      Transport
	log            *slog.Logger
	metrics        *Metrics
	tracerProvider trace.TracerProvider
}

// Option configures a Session.
type Option func(*settings)

// WithBaseURL sets the decision service URL. A trailing slash is ignored.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.cfg.BaseURL = baseURL
	}
}

// WithCookiePrefix sets the prefix of the store key holding the visitor id.
func WithCookiePrefix(prefix string) Option {
	return func(s *settings) {
		s.cfg.CookiePrefix = prefix
	}
}

// WithTimeout bounds every call to the service. Sub-millisecond precision
// is dropped.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.cfg.TimeoutMS = int(d.Milliseconds())
	}
}

// WithClientID pins the visitor identifier; the store is not consulted.
func WithClientID(id string) Option {
	return func(s *settings) {
		s.cfg.ClientID = id
	}
}

// WithStore persists generated visitor identifiers, typically in a cookie
// jar bound to the current request.
func WithStore(store Store) Option {
	return func(s *settings) {
		s.store = store
	}
}

// WithRequest uses r for force overrides, visitor IP and user agent. Its
// context is used for logging during construction.
func WithRequest(r *http.Request) Option {
	return func(s *settings) {
		s.request = FromHTTPRequest(r)
		if r != nil {
			s.ctx = r.Context()
		}
	}
}

// WithRequestContext is WithRequest for callers without an *http.Request.
func WithRequestContext(rc RequestContext) Option {
	return func(s *settings) {
		s.request = rc
	}
}

// WithTransport replaces the HTTP transport, e.g. with a test double.
func WithTransport(t Transport) Option {
	return func(s *settings) {
		s.transport = t
	}
}

// WithHTTPClient sends calls through client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.transport = NewHTTPTransport(client)
	}
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

// WithMetrics records call counters and latencies into m.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithTracerProvider sets the provider used for call spans. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) {
		s.tracerProvider = tp
	}
}

type participateOptions struct {
	fraction float64
}

// ParticipateOption configures a single Participate call.
type ParticipateOption func(*participateOptions)

// WithTrafficFraction sets the share of visitors, in [0, 1], entering the
// experiment. Defaults to 1.
func WithTrafficFraction(f float64) ParticipateOption {
	return func(o *participateOptions) {
		o.fraction = f
	}
}

type convertOptions struct {
	kpi string
}

// ConvertOption configures a single Convert call.
type ConvertOption func(*convertOptions)

// WithKPI names the metric being converted. Without it the conversion
// counts for the experiment as a whole.
func WithKPI(kpi string) ConvertOption {
	return func(o *convertOptions) {
		o.kpi = kpi
	}
}
