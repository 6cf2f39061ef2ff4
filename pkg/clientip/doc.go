// Package clientip resolves the originating visitor's IP address from an
// inbound request so it can be forwarded to the split-testing service.
//
// The resolution algorithm examines several headers in descending
// priority until the first usable value is found:
//
//  1. X-Forwarded-For – comma-separated list, only the first entry is used
//  2. X-Real-IP       – set by reverse proxies such as Nginx
//  3. Client-IP       – set by some load balancers
//  4. RemoteAddr      – TCP peer address as a fallback
//
// Loopback literals (127.0.0.1 and ::1) are treated as absent, so a
// request proxied through a local process falls through to the next
// source. Values are passed on as the proxy reported them; they are not
// re-formatted.
//
// # Usage
//
//	import "github.com/dmitrymomot/sixpack/pkg/clientip"
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.GetIP(r) // "" when unknown
//	}
//
// # Error Handling
//
// GetIP never returns an error. If no usable address is found an empty
// string is returned so callers can omit the field.
package clientip
