package form

import (
	"context"
	"errors"
	"sync"

	"github.com/bassista/tourdesk/internal/logger"
	"github.com/bassista/tourdesk/internal/remote"
)

var ErrNotOpen = errors.New("form is not open")

// SaveFunc persists the whole record: POST when id is empty, PUT otherwise.
type SaveFunc[T any] func(ctx context.Context, id string, item T) error

// Invalidator is the owning list controller.
type Invalidator interface {
	InvalidateCurrent()
}

// State is what the dashboard renders for the form modal.
type State[T any] struct {
	Open    bool   `json:"open"`
	Mode    string `json:"mode,omitempty"`
	ID      string `json:"id,omitempty"`
	Draft   T      `json:"draft"`
	Message string `json:"message,omitempty"`
}

// Flow collects edits for one record and submits them as a single request.
type Flow[T any] struct {
	name      string
	save      SaveFunc[T]
	owner     Invalidator
	validator *Validator

	mu      sync.Mutex
	open    bool
	id      string
	draft   T
	message string
	gen     uint64 // bumped by Open and reset
}

// NewFlow wires a form to its save call and the controller to invalidate on success.
func NewFlow[T any](name string, v *Validator, save SaveFunc[T], owner Invalidator) *Flow[T] {
	if v == nil {
		v = NewValidator()
	}
	return &Flow[T]{name: name, save: save, owner: owner, validator: v}
}

// Open starts a create (empty id) or edit session with initial field values.
func (f *Flow[T]) Open(id string, initial T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.open = true
	f.id = id
	f.draft = initial
	f.message = ""
}

// Edit applies a local change to the draft.
func (f *Flow[T]) Edit(change func(*T)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return ErrNotOpen
	}
	change(&f.draft)
	return nil
}

// Cancel closes the form and drops local edits.
func (f *Flow[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

// Submit validates and sends the draft.
//
// A validation failure aborts before any request. A remote failure keeps the
// form open with the server's message. Success closes the form and invalidates
// the owner's current page.
func (f *Flow[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return ErrNotOpen
	}
	id, draft, gen := f.id, f.draft, f.gen
	f.mu.Unlock()

	log := logger.WithView("form", f.name)

	if err := f.validator.Check(draft); err != nil {
		f.setMessage(gen, err.Error())
		log.Debugf("validation failed: %v", err)
		return err
	}

	if err := f.save(ctx, id, draft); err != nil {
		msg := err.Error()
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) {
			msg = apiErr.Message
		}
		f.setMessage(gen, msg)
		if errors.Is(err, remote.ErrDuplicate) {
			log.Infof("save rejected as duplicate: %s", msg)
		} else {
			log.Errorf("save failed: %v", err)
		}
		return err
	}

	f.mu.Lock()
	if f.gen == gen {
		f.resetLocked()
	}
	f.mu.Unlock()

	if f.owner != nil {
		f.owner.InvalidateCurrent()
	}
	log.Infof("saved (id=%q)", id)
	return nil
}

// State returns a copy of the form state.
func (f *Flow[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := State[T]{Open: f.open, ID: f.id, Draft: f.draft, Message: f.message}
	if f.open {
		s.Mode = "create"
		if f.id != "" {
			s.Mode = "edit"
		}
	}
	return s
}

func (f *Flow[T]) setMessage(gen uint64, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen == gen {
		f.message = msg
	}
}

func (f *Flow[T]) resetLocked() {
	var zero T
	f.gen++
	f.open = false
	f.id = ""
	f.draft = zero
	f.message = ""
}
