// Package videoid recovers a YouTube video identifier from a pasted reference.
//
// The result is never checked against the identifier alphabet: a bogus value
// simply fails the statistics lookup downstream.
package videoid

import (
	"net/url"
	"strings"
)

// Extract returns the identifier carried by raw.
//
// A "v" query parameter wins (watch?v=ID on any host, scheme optional).
// Otherwise the last non-empty path segment is returned verbatim, which
// covers youtu.be/ID, /shorts/ID, /embed/ID and bare identifiers.
func Extract(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return lastSegment(raw)
	}

	// an empty v is no identifier; falling through would yield "watch"
	if q := u.Query(); q.Has("v") {
		return q.Get("v")
	}

	if seg := lastSegment(u.Path); seg != "" {
		return seg
	}

	// opaque values such as "id:abc"
	return lastSegment(u.Opaque)
}

func lastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
