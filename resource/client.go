package resource

import (
	"context"
	"fmt"
	"net/http"

	"github.com/marcelsud/locadora-web/endpoints"
)

/* Client is the resource hook for one entity
 * Uses pointer semantics as it's an API, not data
 */
type Client[T, C any, U Keyed] struct {
	api      *API
	endpoint endpoints.Endpoint
	store    *Store[T]
}

// New creates a client for the given endpoint with an empty store
func New[T, C any, U Keyed](api *API, endpoint endpoints.Endpoint) *Client[T, C, U] {
	return &Client[T, C, U]{
		api:      api,
		endpoint: endpoint,
		store:    NewStore[T](),
	}
}

// Entity returns the entity name, used as metrics label
func (c *Client[T, C, U]) Entity() string {
	return c.endpoint.Entity
}

// Endpoint returns the endpoint the client was built with
func (c *Client[T, C, U]) Endpoint() endpoints.Endpoint {
	return c.endpoint
}

// List fetches the whole collection and replaces the cached one on success
func (c *Client[T, C, U]) List(ctx context.Context) error {
	var items *[]T
	err := c.api.do(ctx, c.endpoint.Entity, "list", http.MethodGet, c.endpoint.ListPath(), nil, &items)
	if err != nil {
		return fmt.Errorf("listing %s: %w", c.endpoint.Entity, err)
	}
	if items != nil {
		c.store.SetItems(*items)
	}
	return nil
}

// Refresh refetches the collection after a mutation
func (c *Client[T, C, U]) Refresh(ctx context.Context) error {
	return c.List(ctx)
}

// Select fetches one record with its relation expanded, caches it and
// returns it. Callers use the returned record: the cache is shared.
func (c *Client[T, C, U]) Select(ctx context.Context, id string) (T, error) {
	var zero T
	if !c.endpoint.HasRelation() {
		return zero, fmt.Errorf("selecting %s %s: %w", c.endpoint.Entity, id, ErrNoRelation)
	}
	var item *T
	err := c.api.do(ctx, c.endpoint.Entity, "select", http.MethodGet, c.endpoint.SelectPath(id), nil, &item)
	if err != nil {
		return zero, fmt.Errorf("selecting %s %s: %w", c.endpoint.Entity, id, err)
	}
	if item == nil {
		return zero, fmt.Errorf("selecting %s %s: %w", c.endpoint.Entity, id, ErrNotFound)
	}
	c.store.SetSelected(*item)
	return *item, nil
}

// Create posts the payload and returns what the server answered.
// The call is detached from ctx cancellation: once issued it runs to the end.
func (c *Client[T, C, U]) Create(ctx context.Context, payload C) (T, error) {
	var created T
	err := c.api.do(context.WithoutCancel(ctx), c.endpoint.Entity, "create", http.MethodPost, c.endpoint.CreatePath(), payload, &created)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("creating %s: %w", c.endpoint.Entity, err)
	}
	return created, nil
}

// Update replaces the record identified by payload.Key()
func (c *Client[T, C, U]) Update(ctx context.Context, payload U) (T, error) {
	var updated T
	err := c.api.do(context.WithoutCancel(ctx), c.endpoint.Entity, "update", http.MethodPut, c.endpoint.UpdatePath(payload.Key()), payload, &updated)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("updating %s %s: %w", c.endpoint.Entity, payload.Key(), err)
	}
	return updated, nil
}

// Delete removes the record with the given id
func (c *Client[T, C, U]) Delete(ctx context.Context, id string) error {
	err := c.api.do(context.WithoutCancel(ctx), c.endpoint.Entity, "delete", http.MethodDelete, c.endpoint.DeletePath(id), nil, nil)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", c.endpoint.Entity, id, err)
	}
	return nil
}

// Items returns the cached collection
func (c *Client[T, C, U]) Items() []T {
	return c.store.Items()
}

// Selected returns the cached selected record
func (c *Client[T, C, U]) Selected() (T, bool) {
	return c.store.Selected()
}

// Loaded reports whether a list fetch ever succeeded
func (c *Client[T, C, U]) Loaded() bool {
	return c.store.Loaded()
}

// Len returns the size of the cached collection
func (c *Client[T, C, U]) Len() int {
	return c.store.Len()
}
