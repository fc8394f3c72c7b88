package domain

import "time"

// Booth is an exhibition station. Hashcode is the opaque token embedded
// in the booth's QR code and is the only public identifier.
type Booth struct {
	ID               uint      `json:"id"`
	BoothNumber      *string   `json:"booth_number,omitempty"`
	BoothName        string    `json:"booth_name"`
	Ministry         string    `json:"ministry"`
	Agency           string    `json:"agency"`
	AbbreviationName string    `json:"abbreviation_name"`
	Hashcode         string    `json:"hashcode"`
	QRCodeGenerated  bool      `json:"qr_code_generated"`
	PICName          *string   `json:"pic_name,omitempty"`
	PICPhone         *string   `json:"pic_phone,omitempty"`
	PICEmail         *string   `json:"pic_email,omitempty"`
	Visits           []Visit   `json:"visits,omitempty"`
	VisitCount       int       `json:"visit_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
