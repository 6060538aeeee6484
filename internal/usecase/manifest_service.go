package usecase

import (
	"context"
	"errors"
	iofs "io/fs"

	"golang.org/x/sync/singleflight"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

type ManifestService struct {
	fs     FileSystem
	cache  Cache
	logger Logger
	hint   core.BuildHint
	group  singleflight.Group
}

func NewManifestService(fs FileSystem, cache Cache, logger Logger, hint core.BuildHint) *ManifestService {
	if logger == nil {
		logger = nopLogger{}
	}
	return &ManifestService{
		fs:     fs,
		cache:  cache,
		logger: logger,
		hint:   hint,
	}
}

// Load reads and parses the manifest from disk. It never retries; a broken
// manifest has to be rebuilt out of band.
func (s *ManifestService) Load(ctx context.Context) (core.Manifest, error) {
	path := s.hint.ManifestPath

	if !s.fs.FileExists(path) {
		return nil, s.hint.NotFound()
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, s.hint.NotFound()
		}
		return nil, s.hint.ReadFailed(err)
	}

	manifest, err := core.ParseManifest(data)
	if err != nil {
		return nil, s.hint.Invalid(err)
	}

	s.logger.Debug(ctx, "manifest loaded", "path", path, "entries", len(manifest))
	return manifest, nil
}

// Cached returns the manifest stored under key, loading it on a miss or when
// forceRefresh is set. Concurrent misses for one key share a single load.
func (s *ManifestService) Cached(ctx context.Context, key string, forceRefresh bool) (core.Manifest, error) {
	if !forceRefresh && s.cache.Has(key) {
		if manifest, ok := s.cache.Get(key); ok {
			s.logger.Debug(ctx, "manifest cache hit", "key", key)
			return manifest, nil
		}
	}

	if forceRefresh {
		s.logger.Debug(ctx, "manifest cache bypassed", "key", key)
		return s.loadAndStore(ctx, key)
	}

	s.logger.Debug(ctx, "manifest cache miss", "key", key)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.loadAndStore(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(core.Manifest), nil
}

func (s *ManifestService) loadAndStore(ctx context.Context, key string) (core.Manifest, error) {
	manifest, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, manifest)
	return manifest, nil
}
