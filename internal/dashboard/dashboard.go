// Package dashboard wires the list views, forms and row drill-downs of the
// admin dashboard to the remote tour-booking service.
package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bassista/tourdesk/internal/config"
	"github.com/bassista/tourdesk/internal/drilldown"
	"github.com/bassista/tourdesk/internal/form"
	"github.com/bassista/tourdesk/internal/logger"
	"github.com/bassista/tourdesk/internal/paging"
	"github.com/bassista/tourdesk/internal/remote"
)

const (
	ViewUsers     = "users"
	ViewAgents    = "agents"
	ViewTours     = "tours"
	ViewCustomers = "customers"

	// FilterActive is the users view filter on is_active.
	FilterActive = "is_active"
)

// Dashboard holds every view of the admin UI.
type Dashboard struct {
	Users     *ListView[remote.User]
	Agents    *ListView[remote.Agent]
	Tours     *ListView[remote.Tour]
	Customers *ListView[remote.Customer]

	UserEditor      *Editor[remote.User]
	AgentEditor     *Editor[remote.Agent]
	TourEditor      *Editor[remote.Tour]
	TravellerEditor *Editor[remote.Traveller]

	Travellers   *drilldown.Expander[remote.Traveller]
	Transactions *drilldown.Expander[remote.Transaction]
	AgentDetails *drilldown.Expander[remote.AgentDetail]

	panes map[string]Pane
}

// New builds the views bound to parent's lifetime.
func New(parent context.Context, api Backend, sizes config.ViewsConfig) (*Dashboard, error) {
	d := &Dashboard{}
	var err error

	d.Users, err = newListView(parent, "Users", paging.Resource[remote.User]{
		Name:     ViewUsers,
		PageSize: sizes.UsersPageSize,
		Fetch:    fetchUsers(api),
		SearchFields: func(u remote.User) []string {
			return []string{u.Name, u.Mobile, u.Email}
		},
	}, userColumns, map[string][]string{FilterActive: {"true", "false"}})
	if err != nil {
		return nil, err
	}

	d.Agents, err = newListView(parent, "Agents", paging.Resource[remote.Agent]{
		Name:     ViewAgents,
		PageSize: sizes.AgentsPageSize,
		Fetch: func(ctx context.Context, req paging.Request) (paging.Result[remote.Agent], error) {
			page, err := api.ListAgents(ctx, remote.PageQuery{Page: req.Page, PageSize: req.Size})
			if err != nil {
				return paging.Result[remote.Agent]{}, err
			}
			return toResult(page), nil
		},
		SearchFields: func(a remote.Agent) []string {
			return []string{a.Name, a.Mobile, a.Email}
		},
	}, agentColumns, nil)
	if err != nil {
		return nil, err
	}

	d.Tours, err = newListView(parent, "Tours", paging.Resource[remote.Tour]{
		Name:     ViewTours,
		PageSize: sizes.ToursPageSize,
		Fetch: func(ctx context.Context, req paging.Request) (paging.Result[remote.Tour], error) {
			page, err := api.ListTours(ctx, remote.PageQuery{Page: req.Page, PageSize: req.Size})
			if err != nil {
				return paging.Result[remote.Tour]{}, err
			}
			return toResult(page), nil
		},
		SearchFields: func(t remote.Tour) []string {
			return []string{t.Code, t.Name, t.Destination}
		},
	}, tourColumns, nil)
	if err != nil {
		return nil, err
	}

	d.Customers, err = newListView(parent, "Interested customers", paging.Resource[remote.Customer]{
		Name:     ViewCustomers,
		PageSize: sizes.CustomersPageSize,
		Fetch: func(ctx context.Context, req paging.Request) (paging.Result[remote.Customer], error) {
			page, err := api.ListCustomers(ctx, remote.PageQuery{Page: req.Page, PageSize: req.Size})
			if err != nil {
				return paging.Result[remote.Customer]{}, err
			}
			return toResult(page), nil
		},
		SearchFields: func(c remote.Customer) []string {
			return []string{c.Name, c.Mobile, c.Destination}
		},
	}, customerColumns, nil)
	if err != nil {
		return nil, err
	}

	v := form.NewValidator()

	d.UserEditor = &Editor[remote.User]{
		flow: form.NewFlow(ViewUsers, v, func(ctx context.Context, id string, u remote.User) error {
			if id == "" {
				_, err := api.CreateUser(ctx, u)
				return err
			}
			_, err := api.UpdateUser(ctx, id, u)
			return err
		}, d.Users.Controller()),
		remove: api.DeleteUser,
		owner:  d.Users.Controller(),
	}
	d.AgentEditor = &Editor[remote.Agent]{
		flow: form.NewFlow(ViewAgents, v, func(ctx context.Context, id string, a remote.Agent) error {
			if id == "" {
				_, err := api.CreateAgent(ctx, a)
				return err
			}
			_, err := api.UpdateAgent(ctx, id, a)
			return err
		}, d.Agents.Controller()),
		remove: api.DeleteAgent,
		owner:  d.Agents.Controller(),
	}
	d.TourEditor = &Editor[remote.Tour]{
		flow: form.NewFlow(ViewTours, v, func(ctx context.Context, code string, t remote.Tour) error {
			if code == "" {
				_, err := api.CreateTour(ctx, t)
				return err
			}
			_, err := api.UpdateTour(ctx, code, t)
			return err
		}, d.Tours.Controller()),
		remove: api.DeleteTour,
		owner:  d.Tours.Controller(),
	}

	d.Travellers = drilldown.NewExpander("travellers", api.ListTravellers)
	d.Transactions = drilldown.NewExpander("transactions", func(ctx context.Context, id string) ([]remote.Transaction, error) {
		userID, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("user id %q: %w", id, err)
		}
		page, err := api.ListTransactions(ctx, remote.TransactionQuery{UserID: userID, Page: 1, PageSize: sizes.TransactionsPageSize})
		if err != nil {
			return nil, err
		}
		return page.Data, nil
	})
	d.AgentDetails = drilldown.NewExpander("agent-details", func(ctx context.Context, id string) ([]remote.AgentDetail, error) {
		agentID, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("agent id %q: %w", id, err)
		}
		page, err := api.ListAgentDetails(ctx, remote.AgentDetailsQuery{AgentID: agentID, Page: 1, Size: sizes.AgentDetailsPageSize})
		if err != nil {
			return nil, err
		}
		return page.Data, nil
	})

	d.TravellerEditor = &Editor[remote.Traveller]{
		flow: form.NewFlow("travellers", v, func(ctx context.Context, id string, t remote.Traveller) error {
			_, err := api.UpdateTraveller(ctx, id, t)
			return err
		}, nil),
		remove: api.DeleteTraveller,
		after: func(ctx context.Context) {
			// the expanded list is never cached, so fetch it again
			_, _ = d.Travellers.Reload(ctx)
		},
	}

	d.panes = map[string]Pane{
		ViewUsers:     d.Users,
		ViewAgents:    d.Agents,
		ViewTours:     d.Tours,
		ViewCustomers: d.Customers,
	}
	return d, nil
}

func fetchUsers(api Backend) paging.Fetcher[remote.User] {
	return func(ctx context.Context, req paging.Request) (paging.Result[remote.User], error) {
		q := remote.UserQuery{Page: req.Page, Size: req.Size}
		if raw, ok := req.Filters[FilterActive]; ok {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				return paging.Result[remote.User]{}, fmt.Errorf("filter %s=%q: %w", FilterActive, raw, err)
			}
			q.IsActive = &active
		}
		page, err := api.ListUsers(ctx, q)
		if err != nil {
			return paging.Result[remote.User]{}, err
		}
		return toResult(page), nil
	}
}

// Pane returns the list view called name.
func (d *Dashboard) Pane(name string) (Pane, bool) {
	p, ok := d.panes[name]
	return p, ok
}

// CloseView unmounts a view: its cache, in-flight fetches, open form and expanded rows are dropped.
func (d *Dashboard) CloseView(name string) error {
	p, ok := d.panes[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	p.Close()
	switch name {
	case ViewUsers:
		d.UserEditor.Cancel()
		d.TravellerEditor.Cancel()
		d.Travellers.Collapse()
		d.Transactions.Collapse()
	case ViewAgents:
		d.AgentEditor.Cancel()
		d.AgentDetails.Collapse()
	case ViewTours:
		d.TourEditor.Cancel()
	}
	logger.WithView("dashboard", name).Debug("view closed")
	return nil
}

// CloseAll unmounts every view.
func (d *Dashboard) CloseAll() {
	for _, name := range []string{ViewUsers, ViewAgents, ViewTours, ViewCustomers} {
		_ = d.CloseView(name)
	}
}
