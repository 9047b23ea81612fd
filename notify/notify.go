package notify

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSession is returned when the request carries no session id
var ErrNoSession = errors.New("no session")

// Notification is one toast shown on the next page render
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// Success builds the "Sucesso!" toast
func Success(description string) Notification {
	return Notification{Title: "Sucesso!", Description: description, Variant: Default}
}

// Failure builds the destructive "Erro!" toast
func Failure(description string) Notification {
	return Notification{Title: "Erro!", Description: description, Variant: Destructive}
}

// IsDestructive is used by the templates
func (n Notification) IsDestructive() bool {
	return n.Variant == Destructive
}

/* Store keeps pending notifications per browser session
 * Pop returns them in push order and empties the queue
 */
type Store interface {
	Push(ctx context.Context, session string, n Notification) error
	Pop(ctx context.Context, session string) ([]Notification, error)
	Pending(ctx context.Context) (int64, error)
	Close(ctx context.Context) error
}

// Notifier pushes notifications for the session found in ctx
type Notifier struct {
	store     Store
	sessionID func(ctx context.Context) string
}

func NewNotifier(store Store, sessionID func(ctx context.Context) string) *Notifier {
	return &Notifier{
		store:     store,
		sessionID: sessionID,
	}
}

// Notify queues n for the current session
func (n *Notifier) Notify(ctx context.Context, note Notification) error {
	id := n.sessionID(ctx)
	if id == "" {
		return ErrNoSession
	}
	if err := n.store.Push(ctx, id, note); err != nil {
		return fmt.Errorf("pushing notification: %w", err)
	}
	return nil
}

// Drain returns and removes the notifications of the current session
func (n *Notifier) Drain(ctx context.Context) ([]Notification, error) {
	id := n.sessionID(ctx)
	if id == "" {
		return nil, nil
	}
	notes, err := n.store.Pop(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("popping notifications: %w", err)
	}
	return notes, nil
}
