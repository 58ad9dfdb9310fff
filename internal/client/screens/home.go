package screens

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/rockside/internal/client/models"
	"github.com/dmitrijs2005/rockside/internal/common"
)

// HomeState is the questionnaire's position in its lifecycle.
type HomeState int

const (
	HomeIdle HomeState = iota
	HomeConsentGiven
	HomeSaved
	HomeValidationFailed
)

func (s HomeState) String() string {
	switch s {
	case HomeIdle:
		return "idle"
	case HomeConsentGiven:
		return "consent given"
	case HomeSaved:
		return "saved"
	case HomeValidationFailed:
		return "validation failed"
	default:
		return "unknown"
	}
}

// Saver persists a questionnaire. services.QuestionnaireStore satisfies it.
type Saver interface {
	Save(ctx context.Context, rec models.QuestionnaireRecord) error
}

// HomeForm is the questionnaire being filled in on the Home screen.
//
// Transitions:
//
//	Idle --consent--> ConsentGiven --save ok--> Saved
//	                               --invalid--> ValidationFailed
//	any --withdraw consent--> Idle
//	Saved | ValidationFailed --edit--> ConsentGiven
type HomeForm struct {
	state HomeState

	consent  bool
	date     string
	name     string
	photo    *string
	location *models.Location
	comments string

	// LocationStatus is the line shown next to the location field.
	LocationStatus string
}

// NewHomeForm starts an empty form dated now.
func NewHomeForm(now time.Time, locationStatus string) *HomeForm {
	return &HomeForm{
		state:          HomeIdle,
		date:           models.FormatDate(now),
		LocationStatus: locationStatus,
	}
}

func (f *HomeForm) State() HomeState { return f.state }
func (f *HomeForm) Consent() bool    { return f.consent }
func (f *HomeForm) Date() string     { return f.date }

// FormVisible reports whether the fields behind the consent gate are shown.
func (f *HomeForm) FormVisible() bool {
	return f.consent
}

// ToggleConsent flips consent and returns the new value.
func (f *HomeForm) ToggleConsent() bool {
	f.consent = !f.consent
	if f.consent {
		f.state = HomeConsentGiven
	} else {
		f.state = HomeIdle
	}
	return f.consent
}

func (f *HomeForm) SetName(name string) {
	f.name = name
	f.edited()
}

func (f *HomeForm) SetComments(comments string) {
	f.comments = comments
	f.edited()
}

func (f *HomeForm) SetPhoto(ref string) {
	f.photo = &ref
	f.edited()
}

// SetLocation stores a fix and its status line. A nil loc only updates
// the status.
func (f *HomeForm) SetLocation(loc *models.Location, status string) {
	if loc != nil {
		l := *loc
		f.location = &l
	}
	f.LocationStatus = status
	f.edited()
}

func (f *HomeForm) edited() {
	if f.state == HomeSaved || f.state == HomeValidationFailed {
		f.state = HomeConsentGiven
	}
}

// Record snapshots the form as a QuestionnaireRecord.
func (f *HomeForm) Record() models.QuestionnaireRecord {
	rec := models.QuestionnaireRecord{
		Consent:  f.consent,
		Date:     f.date,
		Name:     f.name,
		Comments: f.comments,
	}
	if f.photo != nil {
		p := *f.photo
		rec.Photo = &p
	}
	if f.location != nil {
		l := *f.location
		rec.Location = &l
	}
	return rec
}

// Submit saves the form through s. Validation failures move the form to
// HomeValidationFailed; any other error leaves the state unchanged.
func (f *HomeForm) Submit(ctx context.Context, s Saver) error {
	err := s.Save(ctx, f.Record())
	switch {
	case err == nil:
		f.state = HomeSaved
	case errors.Is(err, common.ErrValidation):
		f.state = HomeValidationFailed
	}
	return err
}
