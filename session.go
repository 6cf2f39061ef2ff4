package sixpack

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/sixpack/pkg/clientip"
	"github.com/dmitrymomot/sixpack/pkg/logger"
)

const tracerName = "github.com/dmitrymomot/sixpack"

// Session is a sixpack client bound to one visitor. All of its state is
// fixed at construction, so it is safe for concurrent use.
type Session struct {
	baseURL   string
	timeout   time.Duration
	clientID  string
	ipAddress string
	userAgent string
	query     url.Values

	transport Transport
	log       *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer
}

// New creates a Session from DefaultConfig and opts.
func New(opts ...Option) (*Session, error) {
	return NewFromConfig(DefaultConfig(), opts...)
}

// NewFromConfig creates a Session from cfg, then applies opts. The visitor
// identifier is resolved here: the configured one, else the one held by
// the store, else a generated one that is written back to the store.
func NewFromConfig(cfg Config, opts ...Option) (*Session, error) {
	st := settings{cfg: cfg}
	for _, opt := range opts {
		opt(&st)
	}

	if err := st.cfg.Validate(); err != nil {
		return nil, err
	}

	if st.ctx == nil {
		st.ctx = context.Background()
	}
	if st.request == nil {
		st.request = Inbound{}
	}
	if st.transport == nil {
		st.transport = NewHTTPTransport(nil)
	}
	if st.log == nil {
		st.log = logger.Discard()
	}
	if st.tracerProvider == nil {
		st.tracerProvider = otel.GetTracerProvider()
	}

	log := st.log.With(logger.Component("sixpack"))

	var userAgent string
	if h := st.request.Header(); h != nil {
		userAgent = h.Get("User-Agent")
	}

	ids := identifierStore{
		store: st.store,
		key:   ClientIDKey(st.cfg.CookiePrefix),
		log:   log,
	}

	return &Session{
		baseURL:   strings.TrimRight(st.cfg.BaseURL, "/"),
		timeout:   st.cfg.Timeout(),
		clientID:  ids.resolve(st.ctx, st.cfg.ClientID),
		ipAddress: clientip.FromHeader(st.request.Header(), st.request.RemoteAddr()),
		userAgent: userAgent,
		query:     st.request.Query(),
		transport: st.transport,
		log:       log,
		metrics:   st.metrics,
		tracer:    st.tracerProvider.Tracer(tracerName),
	}, nil
}

// ClientID returns the visitor identifier sent with every call.
func (s *Session) ClientID() string { return s.clientID }

// Timeout returns the per-call timeout.
func (s *Session) Timeout() time.Duration { return s.timeout }

// BaseURL returns the decision service URL without a trailing slash.
func (s *Session) BaseURL() string { return s.baseURL }

// Participate enrolls the visitor in experiment and returns the assigned
// alternative. The first alternative is the control and is what
// Participation.Alternative falls back to when the call fails.
//
// Input is validated before any I/O and a force override on the inbound
// request short-circuits the call. The returned error is non-nil only for
// invalid input; service and network failures show up as
// Participation.Success() == false.
func (s *Session) Participate(ctx context.Context, experiment string, alternatives []string, opts ...ParticipateOption) (Participation, error) {
	o := participateOptions{fraction: 1}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := s.startSpan(ctx, EndpointParticipate,
		attribute.String("sixpack.experiment", experiment),
		attribute.StringSlice("sixpack.alternatives", alternatives),
		attribute.Float64("sixpack.traffic_fraction", o.fraction),
	)
	defer span.End()

	if err := validateParticipation(experiment, alternatives, o.fraction); err != nil {
		failSpan(span, err)
		return Participation{}, err
	}

	forced, err := s.tryForce(experiment, alternatives)
	if err != nil {
		failSpan(span, err)
		return Participation{}, err
	}
	if forced != nil {
		s.log.DebugContext(ctx, "sixpack: alternative forced",
			logger.Experiment(experiment), logger.Alternative(forced.Alternative()))
		s.metrics.observeForced()
		span.SetAttributes(
			attribute.Bool("sixpack.forced", true),
			attribute.String("sixpack.alternative", forced.Alternative()),
		)
		return *forced, nil
	}

	resp, err := s.call(ctx, span, EndpointParticipate, participateParams(experiment, alternatives, o.fraction))
	if err != nil {
		return Participation{}, err
	}

	p := newParticipation(resp, alternatives[0])
	span.SetAttributes(attribute.String("sixpack.alternative", p.Alternative()))
	return p, nil
}

// Convert records a conversion of the visitor in experiment. Errors and
// failures follow the same rules as Participate.
func (s *Session) Convert(ctx context.Context, experiment string, opts ...ConvertOption) (Conversion, error) {
	var o convertOptions
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := s.startSpan(ctx, EndpointConvert,
		attribute.String("sixpack.experiment", experiment),
		attribute.String("sixpack.kpi", o.kpi),
	)
	defer span.End()

	resp, err := s.call(ctx, span, EndpointConvert, convertParams(experiment, o.kpi))
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{Response: resp}, nil
}

// Status queries the service health endpoint.
func (s *Session) Status(ctx context.Context) (Response, error) {
	ctx, span := s.startSpan(ctx, EndpointStatus)
	defer span.End()

	return s.call(ctx, span, EndpointStatus, nil)
}

// call performs one GET and decodes it. Only URL construction can fail;
// transport errors are logged and turned into a failed Response.
func (s *Session) call(ctx context.Context, span trace.Span, endpoint string, fields params) (Response, error) {
	rawURL, err := s.buildURL(endpoint, fields)
	if err != nil {
		failSpan(span, err)
		return Response{}, err
	}

	start := time.Now()
	body, meta, err := s.transport.Get(ctx, rawURL, s.timeout)
	elapsed := time.Since(start)

	if err != nil {
		s.log.WarnContext(ctx, "sixpack: request failed",
			logger.Endpoint(endpoint), logger.Duration(elapsed), logger.Error(err))
		span.RecordError(err)
		meta = CallMeta{URL: meta.URL}
		body = nil
	}
	if meta.URL == "" {
		meta.URL = rawURL
	}

	resp := Decode(body, meta)
	s.metrics.observe(endpoint, resp.Success(), elapsed)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if !resp.Success() {
		span.SetStatus(codes.Error, "sixpack call failed")
		if err == nil {
			s.log.WarnContext(ctx, "sixpack: unsuccessful response",
				logger.Endpoint(endpoint), logger.StatusCode(resp.StatusCode), logger.Duration(elapsed))
		}
		return resp, nil
	}

	s.log.DebugContext(ctx, "sixpack: request completed",
		logger.Endpoint(endpoint), logger.StatusCode(resp.StatusCode),
		logger.ClientID(s.clientID), logger.Duration(elapsed))
	return resp, nil
}

func (s *Session) startSpan(ctx context.Context, endpoint string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "sixpack."+strings.TrimPrefix(endpoint, "_"),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
