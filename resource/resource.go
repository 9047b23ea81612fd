package resource

import "context"

/* Small interfaces, composed
 * A Client[T, C, U] satisfies all of them for one entity:
 * T is the record the API returns, C the create payload, U the update payload.
 */

// Keyed is implemented by records and update payloads; the key goes into editar/:id
type Keyed interface {
	Key() string
}

type Reader[T any] interface {
	List(ctx context.Context) error
	Select(ctx context.Context, id string) (T, error)
	Items() []T
	Selected() (T, bool)
}

type Writer[T, C any, U Keyed] interface {
	Create(ctx context.Context, payload C) (T, error)
	Update(ctx context.Context, payload U) (T, error)
	Delete(ctx context.Context, id string) error
}

type Repository[T, C any, U Keyed] interface {
	Reader[T]
	Writer[T, C, U]
	Refresh(ctx context.Context) error
}

// Find looks id up in items by Key
func Find[T Keyed](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
