package core

import (
	"strconv"
	"time"
)

const ManifestCacheKeyPrefix = "vite-requirements-manifest-"

// ManifestCacheKey scopes a cached manifest to a build version. Without a
// version the current Unix second is used, so each second gets its own key.
func ManifestCacheKey(buildVersion string, now time.Time) string {
	if buildVersion == "" {
		buildVersion = strconv.FormatInt(now.Unix(), 10)
	}
	return ManifestCacheKeyPrefix + buildVersion
}
