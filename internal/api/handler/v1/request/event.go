package request

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var hexRegex = regexp.MustCompile(`^[0-9a-f]+$`)

// backup-2025-08-30T10-15-00-000Z.json.gz and friends.
var backupFilenameRegex = regexp.MustCompile(`^backup-[0-9A-Za-z+-]+\.json\.gz$`)

type UpdateEventRequest struct {
	Name        string    `json:"name"`
	Slogan      *string   `json:"slogan"`
	Venue       string    `json:"venue"`
	DateStart   time.Time `json:"date_start"`
	DateEnd     time.Time `json:"date_end"`
	Description *string   `json:"description"`
}

func (req *UpdateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Venue, validation.Required),
		validation.Field(&req.DateStart, validation.Required),
		validation.Field(&req.DateEnd, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.DateEnd.Before(req.DateStart) {
		return validation.NewError("validation_date_range", "date_end must not be before date_start")
	}

	return nil
}

type RestoreBackupRequest struct {
	Filename string `json:"filename"`
}

func (req *RestoreBackupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Filename, validation.Required, validation.Match(backupFilenameRegex)),
	)
}
