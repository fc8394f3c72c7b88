package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,19}$`)

type RegisterVisitorRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Gender      string  `json:"gender"`
	State       *string `json:"state"`
	Age         *int    `json:"age"`
	VisitorType *string `json:"visitor_type"`
	Sektor      *string `json:"sektor"`
}

func (req *RegisterVisitorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Match(phoneRegex)),
		validation.Field(&req.Gender, validation.Required, validation.In("male", "female")),
		validation.Field(&req.Age, validation.Min(1), validation.Max(120)),
	)
}

type UpdateVisitorRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Gender      string  `json:"gender"`
	State       *string `json:"state"`
	Age         *int    `json:"age"`
	VisitorType *string `json:"visitor_type"`
	Sektor      *string `json:"sektor"`
}

func (req *UpdateVisitorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Match(phoneRegex)),
		validation.Field(&req.Gender, validation.Required, validation.In("male", "female")),
		validation.Field(&req.Age, validation.Min(1), validation.Max(120)),
	)
}
