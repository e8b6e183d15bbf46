package dashboard

import (
	"github.com/bassista/tourdesk/internal/export"
	"github.com/bassista/tourdesk/internal/remote"
)

// Summary feeds the reports view. Counts cover only the pages loaded so far.
type Summary struct {
	Users                  int            `json:"users"`
	UsersReported          int            `json:"users_reported"`
	UsersByStatus          []export.Count `json:"users_by_status"`
	TotalUserSpend         float64        `json:"total_user_spend"`
	Tours                  int            `json:"tours"`
	ToursByDestination     []export.Count `json:"tours_by_destination"`
	Customers              int            `json:"customers"`
	CustomersByDestination []export.Count `json:"customers_by_destination"`
	Agents                 int            `json:"agents"`
}

func (d *Dashboard) Summary() Summary {
	users := d.Users.Controller().LoadedRows()
	tours := d.Tours.Controller().LoadedRows()
	customers := d.Customers.Controller().LoadedRows()

	s := Summary{
		Users: len(users),
		UsersByStatus: export.CountBy(users, func(u remote.User) string {
			if u.IsActive {
				return "active"
			}
			return "inactive"
		}),
		UsersReported:          d.Users.Controller().Descriptor().TotalRecords,
		Tours:                  len(tours),
		ToursByDestination:     export.CountBy(tours, func(t remote.Tour) string { return t.Destination }),
		Customers:              len(customers),
		CustomersByDestination: export.CountBy(customers, func(c remote.Customer) string { return c.Destination }),
		Agents:                 len(d.Agents.Controller().LoadedRows()),
	}
	for _, u := range users {
		s.TotalUserSpend += u.TotalSpent
	}
	return s
}
