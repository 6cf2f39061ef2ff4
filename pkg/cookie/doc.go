// Package cookie provides a small HTTP cookie manager and a per-request
// key-value jar used to persist the sixpack visitor identifier.
//
// # Overview
//
// The `Manager` type is the entry point. It holds default cookie `Options`
// and, optionally, one or more secrets used for HMAC-SHA256 signatures.
//
// Once created you can:
//
//   • Set(), Get(), Delete() – plain cookies
//   • SetSigned(), GetSigned() – signed cookies (integrity only)
//   • NewJar(), NewSignedJar() – a Get/Set view bound to one request
//
// A `Jar` satisfies the persistence surface expected by sixpack.Session,
// so the visitor id is read from the incoming request and written to the
// outgoing response without the session knowing about HTTP cookies.
//
// # Usage
//
//	import "github.com/dmitrymomot/sixpack/pkg/cookie"
//
//	man, err := cookie.New(nil) // plain cookies only
//	if err != nil { log.Fatal(err) }
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    sess, err := sixpack.New(
//	        sixpack.WithRequest(r),
//	        sixpack.WithStore(man.NewJar(w, r)),
//	    )
//	    _ = sess
//	    _ = err
//	})
//
// Plain cookies are the default because JavaScript sixpack clients read
// the same `sixpack_client_id` cookie. Use a signed jar when only server
// code touches the identifier and tampering must be detected.
//
// # Configuration
//
// The `Config` struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env.
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man, _ := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Package-level sentinel errors are returned for common failure scenarios such as
// `ErrCookieNotFound`, `ErrInvalidSignature` and `ErrNoSecret` so callers can use
// `errors.Is`.
package cookie
