package response

import "github.com/syaifulazham/booth-visit/internal/domain"

// PublicBooth is the visitor-facing projection of a booth. It omits
// PIC contact details and the hashcode.
type PublicBooth struct {
	ID               uint    `json:"id"`
	BoothNumber      *string `json:"booth_number,omitempty"`
	BoothName        string  `json:"booth_name"`
	Ministry         string  `json:"ministry"`
	Agency           string  `json:"agency"`
	AbbreviationName string  `json:"abbreviation_name"`
	VisitCount       int     `json:"visit_count"`
}

func NewPublicBooth(booth domain.Booth) PublicBooth {
	return PublicBooth{
		ID:               booth.ID,
		BoothNumber:      booth.BoothNumber,
		BoothName:        booth.BoothName,
		Ministry:         booth.Ministry,
		Agency:           booth.Agency,
		AbbreviationName: booth.AbbreviationName,
		VisitCount:       booth.VisitCount,
	}
}

func NewPublicBooths(booths []domain.Booth) []PublicBooth {
	result := make([]PublicBooth, 0, len(booths))
	for _, booth := range booths {
		result = append(result, NewPublicBooth(booth))
	}

	return result
}

// VerifyBoothResponse identifies the booth behind a scanned hashcode.
type VerifyBoothResponse struct {
	ID          uint    `json:"id"`
	BoothNumber *string `json:"booth_number,omitempty"`
	BoothName   string  `json:"booth_name"`
	Ministry    string  `json:"ministry"`
	Agency      string  `json:"agency"`
	Hashcode    string  `json:"hashcode"`
}

func NewVerifyBoothResponse(booth domain.Booth) VerifyBoothResponse {
	return VerifyBoothResponse{
		ID:          booth.ID,
		BoothNumber: booth.BoothNumber,
		BoothName:   booth.BoothName,
		Ministry:    booth.Ministry,
		Agency:      booth.Agency,
		Hashcode:    booth.Hashcode,
	}
}
