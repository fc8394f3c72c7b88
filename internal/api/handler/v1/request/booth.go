package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateBoothRequest struct {
	BoothNumber      *string `json:"booth_number"`
	BoothName        string  `json:"booth_name"`
	Ministry         string  `json:"ministry"`
	Agency           string  `json:"agency"`
	AbbreviationName string  `json:"abbreviation_name"`
	PICName          *string `json:"pic_name"`
	PICPhone         *string `json:"pic_phone"`
	PICEmail         *string `json:"pic_email"`
}

func (req *CreateBoothRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BoothName, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Ministry, validation.Required),
		validation.Field(&req.Agency, validation.Required),
		validation.Field(&req.PICEmail, is.Email),
	)
}

type UpdateBoothRequest struct {
	BoothNumber      *string `json:"booth_number"`
	BoothName        string  `json:"booth_name"`
	Ministry         string  `json:"ministry"`
	Agency           string  `json:"agency"`
	AbbreviationName string  `json:"abbreviation_name"`
	PICName          *string `json:"pic_name"`
	PICPhone         *string `json:"pic_phone"`
	PICEmail         *string `json:"pic_email"`
}

func (req *UpdateBoothRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BoothName, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Ministry, validation.Required),
		validation.Field(&req.Agency, validation.Required),
		validation.Field(&req.PICEmail, is.Email),
	)
}
