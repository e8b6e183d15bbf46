package dashboard

import (
	"context"

	"github.com/bassista/tourdesk/internal/remote"
)

// Backend is the slice of the remote client the dashboard drives.
// *remote.Client implements it.
type Backend interface {
	ListUsers(ctx context.Context, q remote.UserQuery) (*remote.Page[remote.User], error)
	CreateUser(ctx context.Context, u remote.User) (*remote.User, error)
	UpdateUser(ctx context.Context, id string, u remote.User) (*remote.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListTravellers(ctx context.Context, userID string) ([]remote.Traveller, error)
	UpdateTraveller(ctx context.Context, id string, t remote.Traveller) (*remote.Traveller, error)
	DeleteTraveller(ctx context.Context, id string) error

	ListAgents(ctx context.Context, q remote.PageQuery) (*remote.Page[remote.Agent], error)
	CreateAgent(ctx context.Context, a remote.Agent) (*remote.Agent, error)
	UpdateAgent(ctx context.Context, id string, a remote.Agent) (*remote.Agent, error)
	DeleteAgent(ctx context.Context, id string) error
	ListAgentDetails(ctx context.Context, q remote.AgentDetailsQuery) (*remote.Page[remote.AgentDetail], error)

	ListTours(ctx context.Context, q remote.PageQuery) (*remote.Page[remote.Tour], error)
	CreateTour(ctx context.Context, t remote.Tour) (*remote.Tour, error)
	UpdateTour(ctx context.Context, code string, t remote.Tour) (*remote.Tour, error)
	DeleteTour(ctx context.Context, code string) error

	ListCustomers(ctx context.Context, q remote.PageQuery) (*remote.Page[remote.Customer], error)
	ListTransactions(ctx context.Context, q remote.TransactionQuery) (*remote.Page[remote.Transaction], error)
}

var _ Backend = (*remote.Client)(nil)
