package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the front.
type Metrics struct {
	// CacheSizes maps entity to the number of records in its cached list
	CacheSizes map[string]int64 `json:"cache_sizes"`

	// PendingNotifications is the number of toasts not shown yet
	PendingNotifications int64 `json:"pending_notifications"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting gauges from the front.
type Collector interface {
	// Collect gathers current metrics
	Collect(ctx context.Context) (Metrics, error)

	// GetCacheSizes returns the cached list size per entity
	GetCacheSizes(ctx context.Context) (map[string]int64, error)

	// GetPendingNotifications returns the toasts waiting for a page render
	GetPendingNotifications(ctx context.Context) (int64, error)
}
