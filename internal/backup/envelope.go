package backup

import (
	"time"

	"github.com/syaifulazham/booth-visit/internal/domain"
)

// Envelope is the JSON structure written to disk (gzip-compressed).
// Booths/Visitors/Visits hold the entry counts of the corresponding
// Data arrays at snapshot time.
type Envelope struct {
	Timestamp string `json:"timestamp"`
	Booths    int    `json:"booths"`
	Visitors  int    `json:"visitors"`
	Visits    int    `json:"visits"`
	Data      Data   `json:"data"`
}

type Data struct {
	Booths   []domain.Booth   `json:"booths"`
	Visitors []domain.Visitor `json:"visitors"`
	Visits   []domain.Visit   `json:"visits"`
}

// TimestampLayout is ISO-8601 with millisecond precision, matching the
// timestamps embedded in backup filenames.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewEnvelope builds an envelope for the given snapshot, stamped with now.
func NewEnvelope(now time.Time, booths []domain.Booth, visitors []domain.Visitor, visits []domain.Visit) Envelope {
	return Envelope{
		Timestamp: now.UTC().Format(TimestampLayout),
		Booths:    len(booths),
		Visitors:  len(visitors),
		Visits:    len(visits),
		Data: Data{
			Booths:   booths,
			Visitors: visitors,
			Visits:   visits,
		},
	}
}
