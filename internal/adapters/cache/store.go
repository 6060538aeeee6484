package cache

import (
	"runtime"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

var numShards = runtime.GOMAXPROCS(0) * 4

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type shard[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
}

// Store is an in-process key/value store split into mutex-guarded shards.
// A zero TTL keeps entries until they are overwritten.
type Store[V any] struct {
	shards []*shard[V]
	ttl    time.Duration
	now    func() time.Time
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	shards := make([]*shard[V], numShards)
	for i := range shards {
		shards[i] = &shard[V]{entries: make(map[string]entry[V])}
	}
	return &Store[V]{shards: shards, ttl: ttl, now: time.Now}
}

func (s *Store[V]) shardFor(key string) *shard[V] {
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

func (s *Store[V]) expired(e entry[V]) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

func (s *Store[V]) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *Store[V]) Get(key string) (V, bool) {
	sh := s.shardFor(key)

	sh.mu.RLock()
	e, ok := sh.entries[key]
	sh.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if s.expired(e) {
		sh.mu.Lock()
		if cur, ok := sh.entries[key]; ok && s.expired(cur) {
			delete(sh.entries, key)
		}
		sh.mu.Unlock()

		var zero V
		return zero, false
	}

	return e.value, true
}

func (s *Store[V]) Set(key string, value V) {
	e := entry[V]{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}

	sh := s.shardFor(key)
	sh.mu.Lock()
	sh.entries[key] = e
	sh.mu.Unlock()
}
