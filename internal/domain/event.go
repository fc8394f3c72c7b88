package domain

import "time"

// Event is the singleton event metadata record. The application treats
// the first row as the current event (first-found-or-create).
type Event struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slogan      *string   `json:"slogan,omitempty"`
	Venue       string    `json:"venue"`
	DateStart   time.Time `json:"date_start"`
	DateEnd     time.Time `json:"date_end"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
