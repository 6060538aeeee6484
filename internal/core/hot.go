package core

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DevEnvironment = "dev"
	hotFlagEnabled = "true"

	ViteClientPath = "/@vite/client"
)

type DevServerPorts struct {
	Plain  int
	Secure int
}

var DefaultDevServerPorts = DevServerPorts{Plain: 5173, Secure: 5174}

// IsHotReloadEnabled reports whether assets should come from the dev server.
// Both the environment marker and the explicit opt-in are required.
func IsHotReloadEnabled(envType, hotFlag string) bool {
	return envType == DevEnvironment && hotFlag == hotFlagEnabled
}

// DevServerBaseURL keeps the scheme and host of siteURL and swaps in the dev
// server port.
func DevServerBaseURL(siteURL string, secure bool, ports DevServerPorts) string {
	if ports.Plain == 0 {
		ports.Plain = DefaultDevServerPorts.Plain
	}
	if ports.Secure == 0 {
		ports.Secure = DefaultDevServerPorts.Secure
	}

	port := ports.Plain
	if secure {
		port = ports.Secure
	}

	return originOf(siteURL) + ":" + strconv.Itoa(port)
}

func originOf(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err == nil && u.Scheme != "" && u.Host != "" {
		host := u.Hostname()
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		return u.Scheme + "://" + host
	}

	parts := strings.SplitN(siteURL, ":", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.TrimRight(strings.Join(parts, ":"), "/")
}

// HotAssets splits additional requirements for dev server mode. Paths are
// returned untouched since the dev server serves sources directly.
func HotAssets(additional []string) (scripts, styles []string) {
	for _, asset := range additional {
		if Classify(asset) == AssetStylesheet {
			styles = append(styles, asset)
			continue
		}
		scripts = append(scripts, asset)
	}
	return scripts, styles
}
