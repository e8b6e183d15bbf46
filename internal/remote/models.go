package remote

// User is one row of the user tour summary.
type User struct {
	ID           int     `json:"id,omitempty"`
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,contains=@"`
	Mobile       string  `json:"mobile" validate:"required,mobile"`
	IsActive     bool    `json:"is_active"`
	City         string  `json:"city,omitempty"`
	ReferredBy   string  `json:"referred_by,omitempty"`
	TourCount    int     `json:"tour_count,omitempty"`
	TotalSpent   float64 `json:"total_spent,omitempty"`
	LastTourCode string  `json:"last_tour_code,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

// Traveller is an extra person (family member, companion) attached to a user.
type Traveller struct {
	ID       int    `json:"id,omitempty"`
	UserID   int    `json:"user_id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age,omitempty" validate:"gte=0,lte=130"`
	Gender   string `json:"gender,omitempty"`
	Relation string `json:"relation,omitempty"`
	Mobile   string `json:"mobile,omitempty" validate:"omitempty,mobile"`
	Document string `json:"document,omitempty"`
}

// Agent is an employee who sells tours and refers users.
type Agent struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,contains=@"`
	Mobile       string `json:"mobile" validate:"required,mobile"`
	Role         string `json:"role,omitempty"`
	ReferralCode string `json:"referral_code,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// AgentDetail is a user referred by an agent together with the booking it produced.
type AgentDetail struct {
	UserID   int     `json:"user_id"`
	Name     string  `json:"name"`
	Mobile   string  `json:"mobile"`
	Email    string  `json:"email"`
	TourCode string  `json:"tour_code,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	BookedAt string  `json:"booked_at,omitempty"`
}

// Tour is a configured tour package, keyed by its code.
type Tour struct {
	Code         string  `json:"code" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Destination  string  `json:"destination" validate:"required"`
	DurationDays int     `json:"duration_days" validate:"gte=0"`
	Price        float64 `json:"price" validate:"gte=0"`
	Seats        int     `json:"seats,omitempty" validate:"gte=0"`
	StartDate    string  `json:"start_date,omitempty"`
	Description  string  `json:"description,omitempty"`
	Image        string  `json:"image,omitempty"`
	IsActive     bool    `json:"is_active"`
}

// Customer is a prospect who asked to be contacted about a destination.
type Customer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email,omitempty"`
	Destination string `json:"destination,omitempty"`
	TravelDate  string `json:"travel_date,omitempty"`
	Message     string `json:"message,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Transaction is a payment made by a user.
type Transaction struct {
	ID        int     `json:"id"`
	UserID    int     `json:"user_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Mode      string  `json:"mode,omitempty"`
	Reference string  `json:"reference,omitempty"`
	TourCode  string  `json:"tour_code,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}
