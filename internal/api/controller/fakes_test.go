package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/bassista/tourdesk/internal/dashboard"
	"github.com/bassista/tourdesk/internal/export"
	"github.com/bassista/tourdesk/internal/form"
	"github.com/bassista/tourdesk/internal/paging"
	"github.com/bassista/tourdesk/internal/remote"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type item struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile"`
}

// fakeCrud records every call made by the CRUD handlers.
type fakeCrud struct {
	mu        sync.Mutex
	saveErr   error
	deleteErr error
	savedID   string
	saved     item
	deleted   []string
	cancelled int
	state     form.State[item]
}

func (f *fakeCrud) Save(_ context.Context, id string, it item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedID, f.saved = id, it
	if f.saveErr != nil {
		f.state = form.State[item]{Open: true, ID: id, Draft: it, Message: f.saveErr.Error()}
	}
	return f.saveErr
}

func (f *fakeCrud) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeCrud) Form() form.State[item] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeCrud) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled++
	f.state = form.State[item]{}
}

// fakePane is a dashboard.Pane with one fixed page.
type fakePane struct {
	mu        sync.Mutex
	name      string
	rows      []item
	filters   map[string]string
	allowed   map[string]bool
	lastPage  int
	lastQuery string
	refreshed int
	closed    int
}

var _ dashboard.Pane = (*fakePane)(nil)

func newFakePane(name string, rows ...item) *fakePane {
	return &fakePane{name: name, rows: rows, filters: map[string]string{}, allowed: map[string]bool{"is_active": true}}
}

func (p *fakePane) Name() string { return p.name }

func (p *fakePane) List(_ context.Context, page int, query string) dashboard.Listing {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastPage, p.lastQuery = page, query
	return p.listingLocked(page, query)
}

func (p *fakePane) Refresh(_ context.Context) dashboard.Listing {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refreshed++
	return p.listingLocked(1, "")
}

func (p *fakePane) listingLocked(page int, query string) dashboard.Listing {
	filters := map[string]string{}
	for k, v := range p.filters {
		filters[k] = v
	}
	return dashboard.Listing{
		View:       p.name,
		Rows:       p.rows,
		Pagination: paging.Descriptor{Page: page, PageSize: 15, TotalRecords: len(p.rows), TotalPages: 1},
		Query:      query,
		Filters:    filters,
	}
}

func (p *fakePane) SetFilters(filters map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for key, value := range filters {
		if !p.allowed[key] {
			return &dashboard.FilterError{View: p.name, Key: key, Value: value}
		}
	}
	for key, value := range filters {
		p.filters[key] = value
	}
	return nil
}

func (p *fakePane) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed++
}

func (p *fakePane) Table() export.Table {
	p.mu.Lock()
	defer p.mu.Unlock()
	return export.Build(p.name, []export.Column[item]{
		{Title: "Name", Value: func(i item) string { return i.Name }},
		{Title: "Mobile", Value: func(i item) string { return i.Mobile }},
	}, p.rows)
}

// fakeOTP accepts only acceptOTP.
type fakeOTP struct {
	mu        sync.Mutex
	sendErr   error
	acceptOTP string
	sent      []string
}

func (f *fakeOTP) SendOTP(_ context.Context, mobile string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, mobile)
	return f.sendErr
}

func (f *fakeOTP) VerifyOTP(_ context.Context, _ string, otp string) error {
	if otp != f.acceptOTP {
		return errRejected
	}
	return nil
}

var (
	errBoom     = errors.New("boom")
	errRejected = fmt.Errorf("%w: wrong code", remote.ErrOTPRejected)
)
