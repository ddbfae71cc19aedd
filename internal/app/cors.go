package app

import (
	"net/url"
	"strings"
)

// Allowed-origin patterns come from config.Server.AllowedOrigins and are
// matched against the host portion of the Origin header. Two wildcard
// forms are understood: "*.domain" matches any subdomain of domain, and
// "host:*" matches host on any port.

// extractOriginHost strips the scheme from an Origin header value,
// leaving "host" or "host:port". Values that do not parse as a URL are
// returned untouched so exact patterns still match them.
func extractOriginHost(origin string) string {
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		return u.Host
	}
	return origin
}

func matchOriginPattern(pattern, host string) bool {
	if pattern == host {
		return true
	}
	if domain, ok := strings.CutPrefix(pattern, "*."); ok {
		return strings.HasSuffix(host, "."+domain)
	}
	if bare, ok := strings.CutSuffix(pattern, ":*"); ok {
		return strings.HasPrefix(host, bare+":")
	}
	return false
}
