package dialog

import (
	"context"
	"fmt"

	"github.com/marcelsud/locadora-web/notify"
)

// RemovalMessages are the toast descriptions of one entity removal
type RemovalMessages struct {
	Removed string
	Failed  string
}

// RemovalDialog asks for confirmation and deletes one record
type RemovalDialog struct {
	remover   Remover
	refresher Refresher
	notifier  Notifier
	messages  RemovalMessages

	open bool
	id   string
}

func NewRemovalDialog(remover Remover, refresher Refresher, notifier Notifier, messages RemovalMessages) *RemovalDialog {
	return &RemovalDialog{
		remover:   remover,
		refresher: refresher,
		notifier:  notifier,
		messages:  messages,
	}
}

func (d *RemovalDialog) Open(id string) {
	d.open = true
	d.id = id
}

// Confirm issues one DELETE. Failures are not told apart: the message
// names the business rule that most often blocks a removal.
func (d *RemovalDialog) Confirm(ctx context.Context, id string) error {
	d.Open(id)

	if err := d.remover.Delete(ctx, id); err != nil {
		_ = d.notifier.Notify(ctx, notify.Failure(d.messages.Failed))
		return fmt.Errorf("removing %s: %w", id, err)
	}

	_ = d.notifier.Notify(ctx, notify.Success(d.messages.Removed))
	d.Cancel()

	if err := d.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing after removal: %w", err)
	}
	return nil
}

func (d *RemovalDialog) Cancel() {
	d.open = false
	d.id = ""
}

func (d *RemovalDialog) IsOpen() bool {
	return d.open
}

// ID is the record awaiting confirmation
func (d *RemovalDialog) ID() string {
	return d.id
}
