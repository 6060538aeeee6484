package http

import (
	"net/http"
	"strings"
)

const FlushParam = "flush"

// FlushRequested reports whether the request asks to bypass the manifest
// cache. Presence of the parameter is enough; its value is ignored.
func FlushRequested(req *http.Request) bool {
	if req == nil || req.URL == nil {
		return false
	}
	return req.URL.Query().Has(FlushParam)
}

func IsSecure(req *http.Request) bool {
	if req == nil {
		return false
	}
	if req.TLS != nil {
		return true
	}
	proto := req.Header.Get("X-Forwarded-Proto")
	return strings.EqualFold(strings.TrimSpace(strings.Split(proto, ",")[0]), "https")
}

// SiteURL is the absolute base URL the request was made against.
func SiteURL(req *http.Request) string {
	scheme := "http"
	if IsSecure(req) {
		scheme = "https"
	}

	host := "localhost"
	if req != nil {
		if fwd := req.Header.Get("X-Forwarded-Host"); fwd != "" {
			host = strings.TrimSpace(strings.Split(fwd, ",")[0])
		} else if req.Host != "" {
			host = req.Host
		}
	}

	return scheme + "://" + host + "/"
}
