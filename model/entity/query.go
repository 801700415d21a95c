package entity

// Support query statuses and priorities, backend spelling.
const (
	QueryStatusOpen       = "open"
	QueryStatusInProgress = "in_progress"
	QueryStatusResolved   = "resolved"
	QueryStatusClosed     = "closed"

	QueryPriorityHigh   = "High"
	QueryPriorityMedium = "Medium"
	QueryPriorityLow    = "Low"
)

// SupportQuery is a customer support ticket.
type SupportQuery struct {
	ID        string    `json:"_id"`
	User      QueryUser `json:"user"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Category  string    `json:"category,omitempty"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt string    `json:"createdAt,omitempty"`
	UpdatedAt string    `json:"updatedAt,omitempty"`
}

type QueryUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// QueryStats is the /queries/admin/stats payload.
type QueryStats struct {
	Total        int `json:"total"`
	Open         int `json:"open"`
	InProgress   int `json:"inProgress"`
	Resolved     int `json:"resolved"`
	Closed       int `json:"closed"`
	HighPriority int `json:"highPriority"`
}
