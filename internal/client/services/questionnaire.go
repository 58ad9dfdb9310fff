package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rockside/internal/client/models"
	"github.com/dmitrijs2005/rockside/internal/client/storage"
	"github.com/dmitrijs2005/rockside/internal/metrics"
	"github.com/dmitrijs2005/rockside/internal/validation"
)

// QuestionnaireStore validates and persists the single QuestionnaireRecord.
type QuestionnaireStore interface {
	Save(ctx context.Context, rec models.QuestionnaireRecord) error
	Load(ctx context.Context) (*models.QuestionnaireRecord, error)
}

type questionnaireStore struct {
	records recordStore[models.QuestionnaireRecord]
	opts    options
}

func NewQuestionnaireStore(repo storage.Repository, opts ...Option) QuestionnaireStore {
	o := buildOptions(opts)
	return &questionnaireStore{
		records: recordStore[models.QuestionnaireRecord]{key: KeyForm, repo: repo, opts: o},
		opts:    o,
	}
}

// ValidateQuestionnaire requires consent, a name longer than two
// characters, a photo and a location. The date is not checked.
func ValidateQuestionnaire(rec models.QuestionnaireRecord) error {
	var c validation.Collector
	c.Check(rec.Consent, validation.FieldConsent, "consent is required")
	c.Check(validation.ValidateName(rec.Name), validation.FieldName,
		fmt.Sprintf("name must be longer than %d characters", validation.MinNameLength))
	c.Check(rec.Photo != nil && *rec.Photo != "", validation.FieldPhoto, "choose a photo")
	c.Check(rec.Location != nil, validation.FieldLocation, "location is not available yet")
	return c.Err()
}

func (s *questionnaireStore) Save(ctx context.Context, rec models.QuestionnaireRecord) error {
	if err := ValidateQuestionnaire(rec); err != nil {
		s.opts.observer.ObserveSave(KeyForm, metrics.OutcomeInvalid)
		return err
	}
	if rec.Date == "" {
		rec.Date = models.FormatDate(s.opts.now())
	}
	return s.records.save(ctx, &rec)
}

func (s *questionnaireStore) Load(ctx context.Context) (*models.QuestionnaireRecord, error) {
	return s.records.load(ctx)
}
