package dialog

import (
	"context"

	"github.com/marcelsud/locadora-web/notify"
	"github.com/marcelsud/locadora-web/resource"
)

/* Small interfaces the dialogs depend on
 * resource.Client satisfies Saver, Remover and Refresher for every entity
 */

type Saver[T, C any, U resource.Keyed] interface {
	Create(ctx context.Context, payload C) (T, error)
	Update(ctx context.Context, payload U) (T, error)
}

type Remover interface {
	Delete(ctx context.Context, id string) error
}

type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefresherFunc adapts a function to Refresher
type RefresherFunc func(ctx context.Context) error

func (f RefresherFunc) Refresh(ctx context.Context) error {
	return f(ctx)
}

// Toggler flips the active flag of a record and returns the new state
type Toggler interface {
	Toggle(ctx context.Context, id string) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, n notify.Notification) error
}

// Draft turns the validated form into request payloads
type Draft[T, C any, U resource.Keyed] interface {
	CreatePayload() C
	UpdatePayload(existing T) U
}
