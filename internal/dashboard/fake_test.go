package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/bassista/tourdesk/internal/config"
	"github.com/bassista/tourdesk/internal/remote"
)

var testSizes = config.ViewsConfig{
	UsersPageSize:        15,
	AgentsPageSize:       9,
	ToursPageSize:        9,
	CustomersPageSize:    15,
	TransactionsPageSize: 10,
	AgentDetailsPageSize: 10,
}

// fakeBackend serves generated rows and records every call.
type fakeBackend struct {
	mu         sync.Mutex
	calls      []string
	userQuery  []remote.UserQuery
	users      []remote.User
	tours      []remote.Tour
	customers  []remote.Customer
	agents     []remote.Agent
	travellers map[string][]remote.Traveller
	saveErr    error
	listErr    error
}

func newFakeBackend(users int) *fakeBackend {
	f := &fakeBackend{travellers: map[string][]remote.Traveller{}}
	for i := 1; i <= users; i++ {
		f.users = append(f.users, remote.User{
			ID:         i,
			Name:       fmt.Sprintf("User %02d", i),
			Email:      fmt.Sprintf("user%02d@example.com", i),
			Mobile:     fmt.Sprintf("98765432%02d", i),
			IsActive:   i%2 == 0,
			TotalSpent: 100,
		})
	}
	return f
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func paginate[T any](all []T, page, size int) *remote.Page[T] {
	total := len(all)
	pages := (total + size - 1) / size
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := min(start+size, total)
	rows := append([]T{}, all[start:end]...)
	return &remote.Page[T]{Data: rows, TotalRecords: total, TotalPages: pages, PageSize: size, Page: page}
}

func (f *fakeBackend) ListUsers(_ context.Context, q remote.UserQuery) (*remote.Page[remote.User], error) {
	f.record("GET users page=" + strconv.Itoa(q.Page))
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userQuery = append(f.userQuery, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	rows := f.users
	if q.IsActive != nil {
		rows = nil
		for _, u := range f.users {
			if u.IsActive == *q.IsActive {
				rows = append(rows, u)
			}
		}
	}
	return paginate(rows, q.Page, q.Size), nil
}

func (f *fakeBackend) CreateUser(_ context.Context, u remote.User) (*remote.User, error) {
	f.record("POST user")
	return &u, f.saveErr
}

func (f *fakeBackend) UpdateUser(_ context.Context, id string, u remote.User) (*remote.User, error) {
	f.record("PUT user " + id)
	return &u, f.saveErr
}

func (f *fakeBackend) DeleteUser(_ context.Context, id string) error {
	f.record("DELETE user " + id)
	return nil
}

func (f *fakeBackend) ListTravellers(_ context.Context, userID string) ([]remote.Traveller, error) {
	f.record("GET travellers " + userID)
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]remote.Traveller{}, f.travellers[userID]...), nil
}

func (f *fakeBackend) UpdateTraveller(_ context.Context, id string, t remote.Traveller) (*remote.Traveller, error) {
	f.record("PUT traveller " + id)
	return &t, f.saveErr
}

func (f *fakeBackend) DeleteTraveller(_ context.Context, id string) error {
	f.record("DELETE traveller " + id)
	return nil
}

func (f *fakeBackend) ListAgents(_ context.Context, q remote.PageQuery) (*remote.Page[remote.Agent], error) {
	f.record("GET agents page=" + strconv.Itoa(q.Page))
	return paginate(f.agents, q.Page, q.PageSize), nil
}

func (f *fakeBackend) CreateAgent(_ context.Context, a remote.Agent) (*remote.Agent, error) {
	f.record("POST agent")
	return &a, f.saveErr
}

func (f *fakeBackend) UpdateAgent(_ context.Context, id string, a remote.Agent) (*remote.Agent, error) {
	f.record("PUT agent " + id)
	return &a, f.saveErr
}

func (f *fakeBackend) DeleteAgent(_ context.Context, id string) error {
	f.record("DELETE agent " + id)
	return nil
}

func (f *fakeBackend) ListAgentDetails(_ context.Context, q remote.AgentDetailsQuery) (*remote.Page[remote.AgentDetail], error) {
	f.record(fmt.Sprintf("GET agent details %d size=%d", q.AgentID, q.Size))
	return paginate([]remote.AgentDetail{{UserID: 1, Name: "Referred"}}, q.Page, q.Size), nil
}

func (f *fakeBackend) ListTours(_ context.Context, q remote.PageQuery) (*remote.Page[remote.Tour], error) {
	f.record("GET tours page=" + strconv.Itoa(q.Page))
	return paginate(f.tours, q.Page, q.PageSize), nil
}

func (f *fakeBackend) CreateTour(_ context.Context, t remote.Tour) (*remote.Tour, error) {
	f.record("POST tour")
	return &t, f.saveErr
}

func (f *fakeBackend) UpdateTour(_ context.Context, code string, t remote.Tour) (*remote.Tour, error) {
	f.record("PUT tour " + code)
	return &t, f.saveErr
}

func (f *fakeBackend) DeleteTour(_ context.Context, code string) error {
	f.record("DELETE tour " + code)
	return nil
}

func (f *fakeBackend) ListCustomers(_ context.Context, q remote.PageQuery) (*remote.Page[remote.Customer], error) {
	f.record("GET customers page=" + strconv.Itoa(q.Page))
	return paginate(f.customers, q.Page, q.PageSize), nil
}

func (f *fakeBackend) ListTransactions(_ context.Context, q remote.TransactionQuery) (*remote.Page[remote.Transaction], error) {
	f.record(fmt.Sprintf("GET transactions %d size=%d", q.UserID, q.PageSize))
	return paginate([]remote.Transaction{{ID: 1, UserID: q.UserID, Amount: 500, Status: "paid"}}, q.Page, q.PageSize), nil
}

var errDuplicate = &remote.APIError{Status: http.StatusConflict, Message: "mobile already registered"}
