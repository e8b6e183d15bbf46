// Package paging caches server-paginated lists one page at a time for the
// dashboard views.
package paging

import (
	"context"
	"maps"
)

// Request is what a Fetcher receives for one page.
type Request struct {
	Page    int
	Size    int
	Filters map[string]string
}

// Result is one page as returned by the remote service.
type Result[T any] struct {
	Rows         []T
	TotalRecords int
	TotalPages   int
	PageSize     int
}

// Fetcher loads one page from the remote service.
type Fetcher[T any] func(ctx context.Context, req Request) (Result[T], error)

// Resource configures a Controller for one list endpoint.
type Resource[T any] struct {
	// Name identifies the view in logs, e.g. "users".
	Name string
	// PageSize is fixed for the lifetime of the controller.
	PageSize int
	Fetch    Fetcher[T]
	// SearchFields returns the values that Search matches against.
	SearchFields func(T) []string
	// Filters are the initial extra query values.
	Filters map[string]string
}

func (r Resource[T]) initialFilters() map[string]string {
	if r.Filters == nil {
		return map[string]string{}
	}
	return maps.Clone(r.Filters)
}
