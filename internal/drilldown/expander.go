// Package drilldown expands a single table row into a secondary list.
package drilldown

import (
	"context"
	"sync"

	"github.com/bassista/tourdesk/internal/logger"
)

// LoadFunc fetches the secondary list for a row.
type LoadFunc[T any] func(ctx context.Context, id string) ([]T, error)

// State is the expanded row and its secondary rows.
type State[T any] struct {
	Expanded string `json:"expanded,omitempty"`
	Rows     []T    `json:"rows"`
	Error    string `json:"error,omitempty"`
}

// Expander tracks which row of a table is expanded. Secondary lists are
// fetched on every expand and never cached.
type Expander[T any] struct {
	name string
	load LoadFunc[T]

	mu       sync.Mutex
	expanded string
	rows     []T
	lastErr  string
	seq      uint64
}

func NewExpander[T any](name string, load LoadFunc[T]) *Expander[T] {
	return &Expander[T]{name: name, load: load}
}

// Toggle collapses id when it is the expanded row, otherwise expands it with one fetch.
// Expanding a row collapses whatever was expanded before.
func (e *Expander[T]) Toggle(ctx context.Context, id string) (State[T], error) {
	e.mu.Lock()
	if e.expanded == id && id != "" {
		e.collapseLocked()
		s := e.stateLocked()
		e.mu.Unlock()
		return s, nil
	}
	e.mu.Unlock()
	return e.expand(ctx, id)
}

// Reload fetches the expanded row's list again, after it was edited.
func (e *Expander[T]) Reload(ctx context.Context) (State[T], error) {
	e.mu.Lock()
	id := e.expanded
	if id == "" {
		s := e.stateLocked()
		e.mu.Unlock()
		return s, nil
	}
	e.mu.Unlock()
	return e.expand(ctx, id)
}

func (e *Expander[T]) expand(ctx context.Context, id string) (State[T], error) {
	e.mu.Lock()
	e.seq++
	seq := e.seq
	e.expanded = id
	e.rows = nil
	e.lastErr = ""
	e.mu.Unlock()

	rows, err := e.load(ctx, id)

	e.mu.Lock()
	defer e.mu.Unlock()
	if seq != e.seq {
		// a later toggle superseded this fetch
		return e.stateLocked(), nil
	}
	if err != nil {
		logger.WithView("drilldown", e.name).Errorf("load %s failed: %v", id, err)
		e.lastErr = err.Error()
		return e.stateLocked(), err
	}
	if rows == nil {
		rows = []T{}
	}
	e.rows = rows
	return e.stateLocked(), nil
}

// Collapse clears the expanded row without issuing a request.
func (e *Expander[T]) Collapse() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.collapseLocked()
}

// State returns a copy of the expansion state.
func (e *Expander[T]) State() State[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Expander[T]) collapseLocked() {
	e.seq++
	e.expanded = ""
	e.rows = nil
	e.lastErr = ""
}

func (e *Expander[T]) stateLocked() State[T] {
	rows := make([]T, len(e.rows))
	copy(rows, e.rows)
	return State[T]{Expanded: e.expanded, Rows: rows, Error: e.lastErr}
}
