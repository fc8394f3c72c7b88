package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type LogVisitRequest struct {
	Hashcode string `json:"hashcode"`
}

func (req *LogVisitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Hashcode, validation.Required, validation.Length(16, 16), validation.Match(hexRegex)),
	)
}

type RateVisitRequest struct {
	VisitID uint    `json:"visit_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

func (req *RateVisitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.VisitID, validation.Required),
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}
