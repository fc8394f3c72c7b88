package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Lookahead assertions need regexp2, stdlib regexp has no support.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordRegex      = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

func validatePassword(password string) error {
	ok, err := passwordRegex.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (req *CreateAdminRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Role, validation.In("admin", "super_admin")),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

// UpdateAdminRequest leaves any empty field untouched; a non-empty
// password must still satisfy the complexity rule.
type UpdateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (req *UpdateAdminRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Name, validation.Length(2, 100)),
		validation.Field(&req.Role, validation.In("admin", "super_admin")),
	)
	if err != nil {
		return err
	}

	if req.Password != "" {
		return validatePassword(req.Password)
	}

	return nil
}
