package dashboard

import (
	"context"

	"github.com/bassista/tourdesk/internal/form"
)

// Editor pairs a form flow with the delete call of the same resource.
type Editor[T any] struct {
	flow   *form.Flow[T]
	remove func(ctx context.Context, id string) error
	owner  form.Invalidator
	after  func(ctx context.Context)
}

// Save opens the form with item and submits it: POST when id is empty, PUT otherwise.
// On failure the form stays open with the message to show.
func (e *Editor[T]) Save(ctx context.Context, id string, item T) error {
	e.flow.Open(id, item)
	if err := e.flow.Submit(ctx); err != nil {
		return err
	}
	if e.after != nil {
		e.after(ctx)
	}
	return nil
}

// Delete removes id and evicts the owner's current page.
func (e *Editor[T]) Delete(ctx context.Context, id string) error {
	if err := e.remove(ctx, id); err != nil {
		return err
	}
	if e.owner != nil {
		e.owner.InvalidateCurrent()
	}
	if e.after != nil {
		e.after(ctx)
	}
	return nil
}

func (e *Editor[T]) Form() form.State[T] {
	return e.flow.State()
}

func (e *Editor[T]) Cancel() {
	e.flow.Cancel()
}
