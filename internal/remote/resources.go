package remote

import (
	"context"
	"fmt"
	"strconv"
)

const (
	usersPath        = "/user-details"
	userSummaryPath  = "/user-details/user-tour-summary"
	travellersPath   = "/user-extra-details"
	agentsPath       = "/agents"
	agentDetailsPath = "/agents/all/details"
	toursPath        = "/tours-config"
	customersPath    = "/customer-interested"
	transactionsPath = "/transactions"
)

// PageQuery is the page/page_size pair most list endpoints accept.
type PageQuery struct {
	Page     int `url:"page"`
	PageSize int `url:"page_size"`
}

// UserQuery filters the user tour summary. It uses "size", not "page_size".
type UserQuery struct {
	IsActive *bool `url:"is_active,omitempty"`
	Page     int   `url:"page"`
	Size     int   `url:"size"`
}

// AgentDetailsQuery lists users referred by one agent.
type AgentDetailsQuery struct {
	AgentID int `url:"agent_id"`
	Page    int `url:"page"`
	Size    int `url:"size"`
}

// TransactionQuery lists the payments of one user.
type TransactionQuery struct {
	UserID   int `url:"user_id"`
	Page     int `url:"page"`
	PageSize int `url:"page_size"`
}

func listPage[T any](ctx context.Context, c *Client, path string, q any) (*Page[T], error) {
	body, err := c.get(ctx, path, q)
	if err != nil {
		return nil, err
	}
	return decodePage[T](path, body)
}

// decodeOptional reads {"data": {...}} when the service sent a body; empty bodies are fine.
func decodeOptional[T any](path string, body []byte) (*T, error) {
	if len(body) == 0 {
		return nil, nil
	}
	return decodeResource[T](path, body)
}

// Users

func (c *Client) ListUsers(ctx context.Context, q UserQuery) (*Page[User], error) {
	page, err := listPage[User](ctx, c, userSummaryPath, q)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return page, nil
}

func (c *Client) CreateUser(ctx context.Context, u User) (*User, error) {
	body, err := c.post(ctx, usersPath, u)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return decodeOptional[User](usersPath, body)
}

func (c *Client) UpdateUser(ctx context.Context, id string, u User) (*User, error) {
	path := usersPath + "/" + escape(id)
	body, err := c.put(ctx, path, u)
	if err != nil {
		return nil, fmt.Errorf("updating user %s: %w", id, err)
	}
	return decodeOptional[User](path, body)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.delete(ctx, usersPath+"/"+escape(id)); err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	return nil
}

// Travellers

func (c *Client) ListTravellers(ctx context.Context, userID string) ([]Traveller, error) {
	path := travellersPath + "/" + escape(userID)
	body, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing travellers of user %s: %w", userID, err)
	}
	return decodeList[Traveller](path, body)
}

func (c *Client) UpdateTraveller(ctx context.Context, id string, t Traveller) (*Traveller, error) {
	path := travellersPath + "/detail/" + escape(id)
	body, err := c.put(ctx, path, t)
	if err != nil {
		return nil, fmt.Errorf("updating traveller %s: %w", id, err)
	}
	return decodeOptional[Traveller](path, body)
}

func (c *Client) DeleteTraveller(ctx context.Context, id string) error {
	if err := c.delete(ctx, travellersPath+"/"+escape(id)); err != nil {
		return fmt.Errorf("deleting traveller %s: %w", id, err)
	}
	return nil
}

// Agents

func (c *Client) ListAgents(ctx context.Context, q PageQuery) (*Page[Agent], error) {
	page, err := listPage[Agent](ctx, c, agentsPath, q)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	return page, nil
}

func (c *Client) GetAgent(ctx context.Context, id string) (*Agent, error) {
	path := agentsPath + "/" + escape(id)
	body, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting agent %s: %w", id, err)
	}
	return decodeResource[Agent](path, body)
}

func (c *Client) CreateAgent(ctx context.Context, a Agent) (*Agent, error) {
	body, err := c.post(ctx, agentsPath, a)
	if err != nil {
		return nil, fmt.Errorf("creating agent: %w", err)
	}
	return decodeOptional[Agent](agentsPath, body)
}

func (c *Client) UpdateAgent(ctx context.Context, id string, a Agent) (*Agent, error) {
	path := agentsPath + "/" + escape(id)
	body, err := c.put(ctx, path, a)
	if err != nil {
		return nil, fmt.Errorf("updating agent %s: %w", id, err)
	}
	return decodeOptional[Agent](path, body)
}

func (c *Client) DeleteAgent(ctx context.Context, id string) error {
	if err := c.delete(ctx, agentsPath+"/"+escape(id)); err != nil {
		return fmt.Errorf("deleting agent %s: %w", id, err)
	}
	return nil
}

func (c *Client) ListAgentDetails(ctx context.Context, q AgentDetailsQuery) (*Page[AgentDetail], error) {
	page, err := listPage[AgentDetail](ctx, c, agentDetailsPath, q)
	if err != nil {
		return nil, fmt.Errorf("listing details of agent %d: %w", q.AgentID, err)
	}
	return page, nil
}

// Tours

func (c *Client) ListTours(ctx context.Context, q PageQuery) (*Page[Tour], error) {
	page, err := listPage[Tour](ctx, c, toursPath, q)
	if err != nil {
		return nil, fmt.Errorf("listing tours: %w", err)
	}
	return page, nil
}

func (c *Client) CreateTour(ctx context.Context, t Tour) (*Tour, error) {
	body, err := c.post(ctx, toursPath, t)
	if err != nil {
		return nil, fmt.Errorf("creating tour: %w", err)
	}
	return decodeOptional[Tour](toursPath, body)
}

func (c *Client) UpdateTour(ctx context.Context, code string, t Tour) (*Tour, error) {
	path := toursPath + "/" + escape(code)
	body, err := c.put(ctx, path, t)
	if err != nil {
		return nil, fmt.Errorf("updating tour %s: %w", code, err)
	}
	return decodeOptional[Tour](path, body)
}

func (c *Client) DeleteTour(ctx context.Context, code string) error {
	if err := c.delete(ctx, toursPath+"/"+escape(code)); err != nil {
		return fmt.Errorf("deleting tour %s: %w", code, err)
	}
	return nil
}

// Customers

func (c *Client) ListCustomers(ctx context.Context, q PageQuery) (*Page[Customer], error) {
	page, err := listPage[Customer](ctx, c, customersPath, q)
	if err != nil {
		return nil, fmt.Errorf("listing interested customers: %w", err)
	}
	return page, nil
}

// Transactions

func (c *Client) ListTransactions(ctx context.Context, q TransactionQuery) (*Page[Transaction], error) {
	page, err := listPage[Transaction](ctx, c, transactionsPath, q)
	if err != nil {
		return nil, fmt.Errorf("listing transactions of user %s: %w", strconv.Itoa(q.UserID), err)
	}
	return page, nil
}
