package response

import "github.com/syaifulazham/booth-visit/internal/domain"

// RegisterVisitorResponse reports whether the registration resolved to
// an existing visitor (matched by phone) instead of creating a new one.
type RegisterVisitorResponse struct {
	Visitor   domain.Visitor `json:"visitor"`
	Returning bool           `json:"returning"`
}

type CheckRegistrationResponse struct {
	Registered bool            `json:"registered"`
	Visitor    *domain.Visitor `json:"visitor,omitempty"`
}
