// Package sixpack is a client for the sixpack A/B testing service.
//
// A Session is bound to one visitor. It carries the visitor identifier,
// IP address and user agent, and asks the service which alternative of an
// experiment the visitor sees, or records a conversion:
//
//	jar := cookies.NewJar(w, r)
//	s, err := sixpack.New(
//		sixpack.WithBaseURL("http://sixpack:5000"),
//		sixpack.WithRequest(r),
//		sixpack.WithStore(jar),
//	)
//	if err != nil {
//		return err
//	}
//
//	p, err := s.Participate(ctx, "button-color", []string{"red", "blue"})
//	if err != nil {
//		return err // invalid experiment or alternative names
//	}
//	render(p.Alternative())
//
//	_, _ = s.Convert(ctx, "button-color", sixpack.WithKPI("signup"))
//
// The returned error covers invalid input only. When the service is slow
// or down the call still returns: Success reports false and Alternative
// falls back to the control, the first alternative given.
//
// A query parameter sixpack-force-<experiment>=<alternative> on the
// inbound request pins the alternative without contacting the service.
//
// The visitor identifier is read from the Store under
// "<prefix>_client_id", or generated and stored for 100 months.
// pkg/cookie provides a cookie jar implementing Store; MemoryStore is an
// in-process alternative.
package sixpack
