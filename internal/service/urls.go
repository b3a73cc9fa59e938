package service

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a website so the same company is recognised however it was typed:
// https is assumed, the host is lower-cased, "www." and trailing slashes are dropped, query and
// fragment are discarded.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", invalid("websiteUrl", "is required")
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", invalid("websiteUrl", "%q is not a valid URL", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", invalid("websiteUrl", "unsupported scheme %q", u.Scheme)
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if !strings.Contains(host, ".") {
		return "", invalid("websiteUrl", "%q has no domain", raw)
	}
	path := strings.TrimRight(u.Path, "/")
	return "https://" + host + path, nil
}
