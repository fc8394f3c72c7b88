package domain

import "time"

// Visitor is identified across sessions by CookieID, an opaque bearer
// token set as a long-lived cookie at registration. There is no login.
type Visitor struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Gender      string    `json:"gender"`
	State       *string   `json:"state,omitempty"`
	Age         *int      `json:"age,omitempty"`
	VisitorType *string   `json:"visitor_type,omitempty"`
	Sektor      *string   `json:"sektor,omitempty"`
	CookieID    string    `json:"cookie_id"`
	Visits      []Visit   `json:"visits,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
