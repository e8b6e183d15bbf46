package dashboard

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/bassista/tourdesk/internal/export"
	"github.com/bassista/tourdesk/internal/paging"
	"github.com/bassista/tourdesk/internal/remote"
)

// Listing is one rendered page of a list view.
type Listing struct {
	View       string            `json:"view"`
	Rows       any               `json:"rows"`
	Pagination paging.Descriptor `json:"pagination"`
	Query      string            `json:"query,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Pane is a list view as the HTTP layer sees it.
type Pane interface {
	Name() string
	List(ctx context.Context, page int, query string) Listing
	Refresh(ctx context.Context) Listing
	// SetFilters checks every key before applying any of them.
	SetFilters(filters map[string]string) error
	Close()
	Table() export.Table
}

// FilterError reports a filter the view does not support.
type FilterError struct {
	View, Key, Value string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("view %s does not accept filter %s=%q", e.View, e.Key, e.Value)
}

// ListView is a paginated view over one remote list.
type ListView[T any] struct {
	title   string
	ctrl    *paging.Controller[T]
	columns []export.Column[T]
	filters map[string][]string
}

func newListView[T any](parent context.Context, title string, res paging.Resource[T], columns []export.Column[T], filters map[string][]string) (*ListView[T], error) {
	ctrl, err := paging.NewController(parent, res)
	if err != nil {
		return nil, err
	}
	return &ListView[T]{title: title, ctrl: ctrl, columns: columns, filters: filters}, nil
}

func (v *ListView[T]) Name() string {
	return v.ctrl.Name()
}

// Controller exposes the underlying page cache.
func (v *ListView[T]) Controller() *paging.Controller[T] {
	return v.ctrl
}

// List moves to page and applies the search query to that page only.
// A deep link past page 1 loads page 1 first so the page range is known.
// When that load leaves the range unknown, page 1 is what the view shows.
func (v *ListView[T]) List(ctx context.Context, page int, query string) Listing {
	var view paging.View[T]
	if page > 1 && v.ctrl.Descriptor().TotalPages == 0 {
		view = v.ctrl.GoToPage(ctx, 1)
		if view.Pagination.TotalPages > 0 {
			view = v.ctrl.GoToPage(ctx, page)
		}
	} else {
		view = v.ctrl.GoToPage(ctx, page)
	}
	rows := view.Rows
	if query != "" {
		rows = v.ctrl.Search(query)
	}
	return v.listing(view, rows, query)
}

// Refresh evicts and reloads the current page.
func (v *ListView[T]) Refresh(ctx context.Context) Listing {
	view := v.ctrl.Refresh(ctx)
	return v.listing(view, view.Rows, "")
}

// SetFilter accepts only the keys and values configured for the view; "" clears.
func (v *ListView[T]) SetFilter(key, value string) error {
	return v.SetFilters(map[string]string{key: value})
}

// SetFilters rejects the whole set when any key or value is not configured,
// leaving the cache untouched.
func (v *ListView[T]) SetFilters(filters map[string]string) error {
	keys := slices.Sorted(maps.Keys(filters))
	for _, key := range keys {
		value := filters[key]
		allowed, ok := v.filters[key]
		if !ok || (value != "" && !slices.Contains(allowed, value)) {
			return &FilterError{View: v.Name(), Key: key, Value: value}
		}
	}
	for _, key := range keys {
		v.ctrl.SetFilter(key, filters[key])
	}
	return nil
}

func (v *ListView[T]) Close() {
	v.ctrl.Close()
}

// Table renders every loaded row for export.
func (v *ListView[T]) Table() export.Table {
	return export.Build(v.title, v.columns, v.ctrl.LoadedRows())
}

func (v *ListView[T]) listing(view paging.View[T], rows []T, query string) Listing {
	if rows == nil {
		rows = []T{}
	}
	return Listing{
		View:       v.Name(),
		Rows:       rows,
		Pagination: view.Pagination,
		Query:      query,
		Filters:    v.ctrl.Filters(),
		Error:      view.Error,
	}
}

func toResult[T any](p *remote.Page[T]) paging.Result[T] {
	return paging.Result[T]{
		Rows:         p.Data,
		TotalRecords: p.TotalRecords,
		TotalPages:   p.TotalPages,
		PageSize:     p.PageSize,
	}
}
