package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManifestCacheKey(t *testing.T) {
	now := time.Unix(1700000000, 0)

	assert.Equal(t, "vite-requirements-manifest-v1.2.3", ManifestCacheKey("v1.2.3", now))
	assert.Equal(t, "vite-requirements-manifest-1700000000", ManifestCacheKey("", now))
	assert.NotEqual(t, ManifestCacheKey("", now), ManifestCacheKey("", now.Add(time.Second)))
}
