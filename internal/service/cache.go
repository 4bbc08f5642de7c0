package service

import (
	"context"
	"encoding/json"
	"time"

	"sporthub-client/internal/client"
)

// resourceCache is the slice of device storage the services use for
// degraded-mode fallbacks.
type resourceCache interface {
	PutCache(ctx context.Context, key string, data []byte) error
	GetCache(ctx context.Context, key string) ([]byte, time.Time, error)
}

// cacheList stores a fresh snapshot; failures are non-fatal, the live result
// already exists.
func cacheList[T any](ctx context.Context, cache resourceCache, key string, items []T) {
	if cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = cache.PutCache(ctx, key, raw)
}

// fallbackList serves the last good snapshot when the backend was
// unreachable. ok is false when there is no usable snapshot; the original
// network error should then propagate. Served data is always marked degraded
// so screens can distinguish it from live data.
func fallbackList[T any](ctx context.Context, cache resourceCache, key string, err error) ([]T, time.Time, bool) {
	if cache == nil || !client.IsNetwork(err) {
		return nil, time.Time{}, false
	}
	raw, fetchedAt, cacheErr := cache.GetCache(ctx, key)
	if cacheErr != nil {
		return nil, time.Time{}, false
	}
	var items []T
	if jsonErr := json.Unmarshal(raw, &items); jsonErr != nil {
		return nil, time.Time{}, false
	}
	return items, fetchedAt, true
}
