package paging

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/bassista/tourdesk/internal/logger"
	"golang.org/x/sync/singleflight"
)

// View is what the dashboard renders for the current page.
type View[T any] struct {
	Rows       []T        `json:"rows"`
	Pagination Descriptor `json:"pagination"`
	Error      string     `json:"error,omitempty"`
}

// Controller fetches, caches and invalidates the pages of one list resource.
//
// A cached page holds exactly what the server returned; it is never patched
// locally after a mutation. Mutations evict the page instead.
type Controller[T any] struct {
	res Resource[T]

	mu           sync.Mutex
	cache        map[int][]T
	epochs       map[int]uint64
	generation   uint64
	filters      map[string]string
	current      int
	pageSize     int
	totalRecords int
	totalPages   int
	errs         map[int]string // last fetch failure per page

	parent context.Context
	scope  context.Context
	cancel context.CancelFunc
	flight singleflight.Group
}

// NewController builds a controller with an empty cache bound to parent's lifetime.
func NewController[T any](parent context.Context, res Resource[T]) (*Controller[T], error) {
	if res.Fetch == nil {
		return nil, fmt.Errorf("paging: resource %q has no fetcher", res.Name)
	}
	if res.PageSize <= 0 {
		return nil, fmt.Errorf("paging: resource %q has invalid page size %d", res.Name, res.PageSize)
	}
	if parent == nil {
		parent = context.Background()
	}

	scope, cancel := context.WithCancel(parent)
	return &Controller[T]{
		res:      res,
		cache:    map[int][]T{},
		epochs:   map[int]uint64{},
		errs:     map[int]string{},
		filters:  res.initialFilters(),
		current:  1,
		pageSize: res.PageSize,
		parent:   parent,
		scope:    scope,
		cancel:   cancel,
	}, nil
}

// Name returns the resource name.
func (c *Controller[T]) Name() string {
	return c.res.Name
}

// GoToPage moves to page n, clamped to the known page range, and loads it.
func (c *Controller[T]) GoToPage(ctx context.Context, n int) View[T] {
	c.mu.Lock()
	c.current = clamp(n, c.totalPages)
	page := c.current
	c.mu.Unlock()

	rows := c.LoadPage(ctx, page)

	c.mu.Lock()
	defer c.mu.Unlock()
	return View[T]{Rows: rows, Pagination: c.describeLocked(page), Error: c.errs[page]}
}

// Current returns the view of the current page without touching the network.
func (c *Controller[T]) Current() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View[T]{
		Rows:       slices.Clone(c.cache[c.current]),
		Pagination: c.describeLocked(c.current),
		Error:      c.errs[c.current],
	}
}

// LoadPage returns page n from the cache or fetches it once.
// Callers asking for a page that is already being fetched wait for that fetch.
// Fetch failures are logged and yield an empty page; nothing is retried.
func (c *Controller[T]) LoadPage(ctx context.Context, n int) []T {
	c.mu.Lock()
	if rows, ok := c.cache[n]; ok {
		c.mu.Unlock()
		return slices.Clone(rows)
	}
	scope := c.scopeLocked()
	gen, epoch := c.generation, c.epochs[n]
	req := Request{Page: n, Size: c.res.PageSize, Filters: maps.Clone(c.filters)}
	key := fmt.Sprintf("%d/%d/%d", gen, epoch, n)
	c.mu.Unlock()

	ch := c.flight.DoChan(key, func() (any, error) {
		return c.fetch(scope, req, gen, epoch), nil
	})

	select {
	case res := <-ch:
		rows, _ := res.Val.([]T)
		return slices.Clone(rows)
	case <-ctx.Done():
		logger.WithView("paging", c.res.Name).Debugf("page %d: caller gave up waiting: %v", n, ctx.Err())
		return []T{}
	}
}

func (c *Controller[T]) fetch(scope context.Context, req Request, gen, epoch uint64) []T {
	log := logger.WithView("paging", c.res.Name)
	log.Debugf("fetching page %d (size %d)", req.Page, req.Size)

	result, err := c.res.Fetch(scope, req)
	if err != nil {
		log.Errorf("fetch page %d: %v", req.Page, err)
		c.mu.Lock()
		if c.generation == gen && c.epochs[req.Page] == epoch {
			c.errs[req.Page] = err.Error()
		}
		c.mu.Unlock()
		return []T{}
	}

	rows := result.Rows
	if rows == nil {
		rows = []T{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen || c.epochs[req.Page] != epoch {
		log.Debugf("page %d: dropping result invalidated while in flight", req.Page)
		return rows
	}
	c.cache[req.Page] = rows
	// descriptor is overwritten as-is; other cached pages are not reconciled
	c.totalRecords = result.TotalRecords
	c.totalPages = result.TotalPages
	if result.PageSize > 0 {
		c.pageSize = result.PageSize
	}
	delete(c.errs, req.Page)
	return rows
}

// Invalidate evicts page n so the next LoadPage fetches it again.
// A fetch already in flight for n keeps running but its result is not cached.
func (c *Controller[T]) Invalidate(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, n)
	delete(c.errs, n)
	c.epochs[n]++
}

// InvalidateCurrent evicts the current page.
func (c *Controller[T]) InvalidateCurrent() {
	c.mu.Lock()
	n := c.current
	c.mu.Unlock()
	c.Invalidate(n)
}

// Refresh evicts and reloads the current page; used after create/update/delete.
func (c *Controller[T]) Refresh(ctx context.Context) View[T] {
	c.mu.Lock()
	n := c.current
	c.mu.Unlock()

	c.Invalidate(n)
	return c.GoToPage(ctx, n)
}

// Search filters the rows of the current page only; it never hits the network.
func (c *Controller[T]) Search(q string) []T {
	c.mu.Lock()
	rows := slices.Clone(c.cache[c.current])
	c.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" || c.res.SearchFields == nil {
		if rows == nil {
			return []T{}
		}
		return rows
	}

	matches := make([]T, 0, len(rows))
	for _, row := range rows {
		haystack := strings.ToLower(strings.Join(c.res.SearchFields(row), " "))
		if strings.Contains(haystack, needle) {
			matches = append(matches, row)
		}
	}
	return matches
}

// SetFilter changes an extra query value. Any change drops the whole cache.
// An empty value removes the filter.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, had := c.filters[key]
	if value == "" {
		if !had {
			return
		}
		delete(c.filters, key)
	} else {
		if had && old == value {
			return
		}
		c.filters[key] = value
	}
	c.resetLocked()
	c.current = 1
}

// Filters returns a copy of the active filters.
func (c *Controller[T]) Filters() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.filters)
}

// Descriptor returns the pagination state of the current page.
func (c *Controller[T]) Descriptor() Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.describeLocked(c.current)
}

// CachedPages lists the page numbers currently held, ascending.
func (c *Controller[T]) CachedPages() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	pages := slices.Collect(maps.Keys(c.cache))
	slices.Sort(pages)
	return pages
}

// LoadedRows returns every cached row in page order.
func (c *Controller[T]) LoadedRows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	pages := slices.Collect(maps.Keys(c.cache))
	slices.Sort(pages)
	var rows []T
	for _, p := range pages {
		rows = append(rows, c.cache[p]...)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows
}

// Close cancels in-flight fetches and discards the cache, as when a view is unmounted.
// The controller stays usable; the next load starts from an empty cache.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.resetLocked()
	c.current = 1
	c.filters = c.res.initialFilters()
}

func (c *Controller[T]) resetLocked() {
	c.cache = map[int][]T{}
	c.epochs = map[int]uint64{}
	c.generation++
	c.totalRecords = 0
	c.totalPages = 0
	c.pageSize = c.res.PageSize
	c.errs = map[int]string{}
}

func (c *Controller[T]) scopeLocked() context.Context {
	if c.cancel == nil {
		c.scope, c.cancel = context.WithCancel(c.parent)
	}
	return c.scope
}

func (c *Controller[T]) describeLocked(page int) Descriptor {
	return describe(page, c.pageSize, c.totalRecords, c.totalPages)
}
