package dashboard

import (
	"strconv"

	"github.com/bassista/tourdesk/internal/export"
	"github.com/bassista/tourdesk/internal/remote"
)

func itoa(n int) string { return strconv.Itoa(n) }

func money(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

var userColumns = []export.Column[remote.User]{
	{Title: "ID", Value: func(u remote.User) string { return itoa(u.ID) }},
	{Title: "Name", Value: func(u remote.User) string { return u.Name }},
	{Title: "Email", Value: func(u remote.User) string { return u.Email }},
	{Title: "Mobile", Value: func(u remote.User) string { return u.Mobile }},
	{Title: "City", Value: func(u remote.User) string { return u.City }},
	{Title: "Active", Value: func(u remote.User) string { return yesNo(u.IsActive) }},
	{Title: "Tours", Value: func(u remote.User) string { return itoa(u.TourCount) }},
	{Title: "Total spent", Value: func(u remote.User) string { return money(u.TotalSpent) }},
}

var agentColumns = []export.Column[remote.Agent]{
	{Title: "ID", Value: func(a remote.Agent) string { return itoa(a.ID) }},
	{Title: "Name", Value: func(a remote.Agent) string { return a.Name }},
	{Title: "Email", Value: func(a remote.Agent) string { return a.Email }},
	{Title: "Mobile", Value: func(a remote.Agent) string { return a.Mobile }},
	{Title: "Role", Value: func(a remote.Agent) string { return a.Role }},
	{Title: "Referral code", Value: func(a remote.Agent) string { return a.ReferralCode }},
	{Title: "Active", Value: func(a remote.Agent) string { return yesNo(a.IsActive) }},
}

var tourColumns = []export.Column[remote.Tour]{
	{Title: "Code", Value: func(t remote.Tour) string { return t.Code }},
	{Title: "Name", Value: func(t remote.Tour) string { return t.Name }},
	{Title: "Destination", Value: func(t remote.Tour) string { return t.Destination }},
	{Title: "Days", Value: func(t remote.Tour) string { return itoa(t.DurationDays) }},
	{Title: "Price", Value: func(t remote.Tour) string { return money(t.Price) }},
	{Title: "Seats", Value: func(t remote.Tour) string { return itoa(t.Seats) }},
	{Title: "Start date", Value: func(t remote.Tour) string { return t.StartDate }},
}

var customerColumns = []export.Column[remote.Customer]{
	{Title: "ID", Value: func(c remote.Customer) string { return itoa(c.ID) }},
	{Title: "Name", Value: func(c remote.Customer) string { return c.Name }},
	{Title: "Mobile", Value: func(c remote.Customer) string { return c.Mobile }},
	{Title: "Email", Value: func(c remote.Customer) string { return c.Email }},
	{Title: "Destination", Value: func(c remote.Customer) string { return c.Destination }},
	{Title: "Travel date", Value: func(c remote.Customer) string { return c.TravelDate }},
}
