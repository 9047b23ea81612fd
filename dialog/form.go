package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/locadora-web/form"
	"github.com/marcelsud/locadora-web/notify"
	"github.com/marcelsud/locadora-web/resource"
)

// FormMessages are the toast descriptions of one entity form
type FormMessages struct {
	Created string
	Updated string
	Failed  string
}

/* FormDialog drives a create-or-edit form
 * It lives for one request: open it, submit the posted draft, render it.
 */
type FormDialog[T, C any, U resource.Keyed, D Draft[T, C, U]] struct {
	saver     Saver[T, C, U]
	refresher Refresher
	notifier  Notifier
	validator *form.Validator
	newDraft  func(existing *T) D
	messages  FormMessages

	open     bool
	existing *T
	draft    D
	errors   form.FieldErrors
}

func NewFormDialog[T, C any, U resource.Keyed, D Draft[T, C, U]](
	saver Saver[T, C, U],
	refresher Refresher,
	notifier Notifier,
	validator *form.Validator,
	newDraft func(existing *T) D,
	messages FormMessages,
) *FormDialog[T, C, U, D] {
	return &FormDialog[T, C, U, D]{
		saver:     saver,
		refresher: refresher,
		notifier:  notifier,
		validator: validator,
		newDraft:  newDraft,
		messages:  messages,
	}
}

// Open shows the dialog. existing nil means create.
func (d *FormDialog[T, C, U, D]) Open(existing *T) {
	d.open = true
	d.existing = existing
	d.draft = d.newDraft(existing)
	d.errors = nil
}

// Submit validates draft and sends exactly one create or update.
// On any failure the dialog stays open with the draft.
func (d *FormDialog[T, C, U, D]) Submit(ctx context.Context, draft D) error {
	if !d.open {
		d.Open(nil)
	}
	d.draft = draft
	d.errors = nil

	if err := d.validate(draft); err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			d.errors = verr.Fields
		}
		return err
	}

	var err error
	success := d.messages.Created
	if d.existing != nil {
		_, err = d.saver.Update(ctx, draft.UpdatePayload(*d.existing))
		success = d.messages.Updated
	} else {
		_, err = d.saver.Create(ctx, draft.CreatePayload())
	}
	if err != nil {
		d.notify(ctx, notify.Failure(d.messages.Failed))
		return fmt.Errorf("saving: %w", err)
	}

	d.notify(ctx, notify.Success(success))
	d.Cancel()

	if err := d.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing after save: %w", err)
	}
	return nil
}

// validate checks the draft, then the create payload when creating
func (d *FormDialog[T, C, U, D]) validate(draft D) error {
	if err := d.validator.Validate(draft); err != nil {
		return err
	}
	if d.existing != nil {
		return nil
	}
	return d.validator.Validate(draft.CreatePayload())
}

// Cancel discards the draft and closes the dialog
func (d *FormDialog[T, C, U, D]) Cancel() {
	var zero D
	d.open = false
	d.existing = nil
	d.draft = zero
	d.errors = nil
}

func (d *FormDialog[T, C, U, D]) IsOpen() bool {
	return d.open
}

// IsEdit reports whether the dialog edits an existing record
func (d *FormDialog[T, C, U, D]) IsEdit() bool {
	return d.existing != nil
}

func (d *FormDialog[T, C, U, D]) Existing() *T {
	return d.existing
}

func (d *FormDialog[T, C, U, D]) Draft() D {
	return d.draft
}

func (d *FormDialog[T, C, U, D]) Errors() form.FieldErrors {
	return d.errors
}

// notify never fails the flow; a lost toast is not worth an error page
func (d *FormDialog[T, C, U, D]) notify(ctx context.Context, n notify.Notification) {
	_ = d.notifier.Notify(ctx, n)
}
