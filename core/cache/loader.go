package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader is a read-through JSON cache. Concurrent misses for the same key share a
// single load. A load that overlaps an Invalidate of its key is returned to its
// callers but never written back.
type Loader struct {
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
	sf     singleflight.Group

	mu       sync.Mutex
	versions map[string]uint64
}

// NewLoader wraps c. Cache failures are logged and fall back to loading.
func NewLoader(c Cache, ttl time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cache: c, ttl: ttl, logger: logger.Named("cache"), versions: make(map[string]uint64)}
}

// GetJSON decodes the cached value of key into out, calling load on a miss.
func (l *Loader) GetJSON(ctx context.Context, key string, out any, load func(ctx context.Context) (any, error)) error {
	raw, ok, err := l.cache.Get(ctx, key)
	if err != nil {
		l.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		if err := json.Unmarshal(raw, out); err == nil {
			return nil
		}
		l.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	}

	res, err, _ := l.sf.Do(key, func() (interface{}, error) {
		version := l.version(key)
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s for cache: %w", key, err)
		}
		if l.version(key) != version {
			l.logger.Debug("Skipping cache write for invalidated key", zap.String("key", key))
			return encoded, nil
		}
		if err := l.cache.Set(ctx, key, encoded, l.ttl); err != nil {
			l.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
		return encoded, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(res.([]byte), out)
}

func (l *Loader) version(key string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.versions[key]
}

// Invalidate drops keys from the cache. Loads already in flight for them are not
// cached, and later callers start a fresh load.
func (l *Loader) Invalidate(ctx context.Context, keys ...string) {
	l.mu.Lock()
	for _, key := range keys {
		l.versions[key]++
		l.sf.Forget(key)
	}
	l.mu.Unlock()

	if err := l.cache.Delete(ctx, keys...); err != nil {
		l.logger.Warn("Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
