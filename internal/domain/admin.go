package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
