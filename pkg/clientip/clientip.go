package clientip

import (
	"net"
	"net/http"
	"slices"
	"strings"
)

// Headers consulted before the remote address, highest priority first.
var Headers = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"Client-IP",
}

// loopback addresses are what a local proxy or dev server reports;
// they say nothing about the visitor and are skipped.
var loopback = []string{"127.0.0.1", "::1"}

// GetIP returns the visitor's IP address for r, or an empty string when
// no usable value is present.
func GetIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	return FromHeader(r.Header, r.RemoteAddr)
}

// FromHeader resolves the visitor IP from inbound headers and the TCP
// remote address. Priority order:
// 1. X-Forwarded-For (first entry of the list)
// 2. X-Real-IP
// 3. Client-IP
// 4. remoteAddr (with or without port)
//
// The first non-empty, non-loopback value wins.
func FromHeader(h http.Header, remoteAddr string) string {
	for _, name := range Headers {
		if ip := candidate(h.Get(name)); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		// No port, assume it's already just an address
		host = remoteAddr
	}
	return candidate(host)
}

// candidate takes the first comma-separated entry of v and discards it
// when empty or loopback.
func candidate(v string) string {
	first, _, _ := strings.Cut(v, ",")
	first = strings.TrimSpace(first)
	if first == "" || IsLoopback(first) {
		return ""
	}
	return first
}

// IsLoopback reports whether ip is one of the loopback literals that
// are treated as absent.
func IsLoopback(ip string) bool {
	return slices.Contains(loopback, strings.Trim(ip, "[]"))
}
