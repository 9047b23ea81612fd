package dialog

import (
	"context"
	"fmt"

	"github.com/marcelsud/locadora-web/notify"
)

type ToggleMessages struct {
	ActivateQuestion   string
	DeactivateQuestion string
	Activated          string
	Deactivated        string
	Failed             string
}

// ToggleDialog confirms activating or deactivating a record
type ToggleDialog struct {
	toggler   Toggler
	refresher Refresher
	notifier  Notifier
	messages  ToggleMessages

	open   bool
	id     string
	active bool
}

func NewToggleDialog(toggler Toggler, refresher Refresher, notifier Notifier, messages ToggleMessages) *ToggleDialog {
	return &ToggleDialog{
		toggler:   toggler,
		refresher: refresher,
		notifier:  notifier,
		messages:  messages,
	}
}

// Open shows the question for a record currently in state active
func (d *ToggleDialog) Open(id string, active bool) {
	d.open = true
	d.id = id
	d.active = active
}

func (d *ToggleDialog) Confirm(ctx context.Context, id string) error {
	active, err := d.toggler.Toggle(ctx, id)
	if err != nil {
		_ = d.notifier.Notify(ctx, notify.Failure(d.messages.Failed))
		return fmt.Errorf("toggling %s: %w", id, err)
	}

	msg := d.messages.Deactivated
	if active {
		msg = d.messages.Activated
	}
	_ = d.notifier.Notify(ctx, notify.Success(msg))
	d.Cancel()

	if err := d.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing after toggle: %w", err)
	}
	return nil
}

func (d *ToggleDialog) Cancel() {
	d.open = false
	d.id = ""
	d.active = false
}

func (d *ToggleDialog) IsOpen() bool {
	return d.open
}

func (d *ToggleDialog) ID() string {
	return d.id
}

// Question is the confirmation text
func (d *ToggleDialog) Question() string {
	if d.active {
		return d.messages.DeactivateQuestion
	}
	return d.messages.ActivateQuestion
}
