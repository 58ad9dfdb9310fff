// Package models defines the records the client persists.
package models

import (
	"fmt"
	"time"
)

// DateLayout renders the registration date the way the questionnaire shows
// it, e.g. "Sun Oct 18 2026".
const DateLayout = "Mon Jan 02 2006"

// AuthRecord is the single stored credential pair.
type AuthRecord struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Location is a single position fix.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (l Location) String() string {
	return fmt.Sprintf("latitude: %v, longitude: %v", l.Lat, l.Lon)
}

// QuestionnaireRecord is the single stored questionnaire.
// Photo and Location are nil until the respondent provides them.
type QuestionnaireRecord struct {
	Consent  bool      `json:"consent"`
	Date     string    `json:"date"`
	Name     string    `json:"name"`
	Photo    *string   `json:"photo"`
	Location *Location `json:"location"`
	Comments string    `json:"comments"`
}

// FormatDate formats t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
