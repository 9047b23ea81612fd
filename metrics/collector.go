package metrics

import (
	"context"
	"fmt"
	"time"
)

// Cache is one entity store; resource.Client implements it
type Cache interface {
	Entity() string
	Len() int
}

// PendingCounter counts queued notifications; notify.Store implements it
type PendingCounter interface {
	Pending(ctx context.Context) (int64, error)
}

// StoreCollector implements Collector over the entity caches and the notification store
type StoreCollector struct {
	caches  []Cache
	pending PendingCounter
}

// NewStoreCollector creates a collector. pending may be nil.
func NewStoreCollector(pending PendingCounter, caches ...Cache) *StoreCollector {
	return &StoreCollector{
		caches:  caches,
		pending: pending,
	}
}

// Track adds caches to the collector. Call it before the exporter is scraped.
func (c *StoreCollector) Track(caches ...Cache) {
	c.caches = append(c.caches, caches...)
}

// Collect gathers all metrics
func (c *StoreCollector) Collect(ctx context.Context) (Metrics, error) {
	sizes, err := c.GetCacheSizes(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting cache sizes: %w", err)
	}

	pending, err := c.GetPendingNotifications(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting pending notifications: %w", err)
	}

	return Metrics{
		CacheSizes:           sizes,
		PendingNotifications: pending,
		Timestamp:            time.Now(),
	}, nil
}

// GetCacheSizes returns the cached list size per entity
func (c *StoreCollector) GetCacheSizes(ctx context.Context) (map[string]int64, error) {
	sizes := make(map[string]int64, len(c.caches))
	for _, cache := range c.caches {
		sizes[cache.Entity()] = int64(cache.Len())
	}
	return sizes, nil
}

// GetPendingNotifications returns the toasts waiting for a page render
func (c *StoreCollector) GetPendingNotifications(ctx context.Context) (int64, error) {
	if c.pending == nil {
		return 0, nil
	}
	n, err := c.pending.Pending(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting notifications: %w", err)
	}
	return n, nil
}
