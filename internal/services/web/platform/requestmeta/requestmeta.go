// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request scheme is resolved.
//
// X-Forwarded-Proto is only honoured when TrustForwardedProto is set, which
// deployments enable when the service sits behind a TLS-terminating proxy.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether the request should be treated as HTTPS.
func (p SchemePolicy) IsHTTPS(r *http.Request) bool {
	return p.scheme(r) == "https"
}

// HasSameOriginProof reports whether Origin, or Referer when Origin is
// missing, names the same scheme, host and port as the request.
func (p SchemePolicy) HasSameOriginProof(r *http.Request) bool {
	if r == nil {
		return false
	}
	want := p.origin(r)
	if want.host == "" {
		return false
	}
	claimed := strings.TrimSpace(r.Header.Get("Origin"))
	if claimed == "" {
		claimed = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claimed == "" {
		return false
	}
	got, ok := parseOrigin(claimed)
	if !ok {
		return false
	}
	return got == want
}

type origin struct {
	scheme string
	host   string
	port   string
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	o := origin{
		scheme: strings.ToLower(strings.TrimSpace(parsed.Scheme)),
		host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		port:   strings.TrimSpace(parsed.Port()),
	}
	if o.scheme == "" || o.host == "" {
		return origin{}, false
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o, o.port != ""
}

func (p SchemePolicy) origin(r *http.Request) origin {
	o := origin{scheme: p.scheme(r)}
	o.host, o.port = splitHost(r.Host)
	if o.host == "" && r.URL != nil {
		o.host, o.port = splitHost(r.URL.Host)
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o
}

func (p SchemePolicy) scheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if p.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch scheme := strings.ToLower(r.URL.Scheme); scheme {
		case "http", "https":
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
