package domain

import "time"

// Report rows are flat, denormalized projections for the admin export
// screens. One row maps to one CSV line downstream.

type BoothReportRow struct {
	ID               uint      `json:"id"`
	BoothNumber      *string   `json:"booth_number,omitempty"`
	BoothName        string    `json:"booth_name"`
	Ministry         string    `json:"ministry"`
	Agency           string    `json:"agency"`
	AbbreviationName string    `json:"abbreviation_name"`
	QRCodeGenerated  bool      `json:"qr_code_generated"`
	VisitCount       int       `json:"visit_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type VisitorReportRow struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Gender      string    `json:"gender"`
	State       *string   `json:"state,omitempty"`
	Age         *int      `json:"age,omitempty"`
	VisitorType *string   `json:"visitor_type,omitempty"`
	Sektor      *string   `json:"sektor,omitempty"`
	VisitCount  int       `json:"visit_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type VisitReportRow struct {
	ID           uint      `json:"id"`
	VisitorName  string    `json:"visitor_name"`
	VisitorEmail string    `json:"visitor_email"`
	BoothNumber  *string   `json:"booth_number,omitempty"`
	BoothName    string    `json:"booth_name"`
	VisitedAt    time.Time `json:"visited_at"`
	Rating       *int      `json:"rating,omitempty"`
	Comment      *string   `json:"comment,omitempty"`
}
