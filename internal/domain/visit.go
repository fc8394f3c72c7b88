package domain

import "time"

// Visit records a visitor scanning a booth's QR code. The pair
// (VisitorID, BoothID) is unique: one visit per visitor per booth.
// Only Rating and Comment may change after creation.
type Visit struct {
	ID        uint      `json:"id"`
	VisitorID uint      `json:"visitor_id"`
	BoothID   uint      `json:"booth_id"`
	VisitedAt time.Time `json:"visited_at"`
	IPAddress *string   `json:"ip_address,omitempty"`
	UserAgent *string   `json:"user_agent,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
	Comment   *string   `json:"comment,omitempty"`
	Booth     *Booth    `json:"booth,omitempty"`
	Visitor   *Visitor  `json:"visitor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
