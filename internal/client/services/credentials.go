package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/rockside/internal/client/models"
	"github.com/dmitrijs2005/rockside/internal/client/storage"
	"github.com/dmitrijs2005/rockside/internal/common"
	"github.com/dmitrijs2005/rockside/internal/metrics"
	"github.com/dmitrijs2005/rockside/internal/validation"
)

// CredentialStore validates and persists the single AuthRecord.
//
// Contract:
//   - Save: validate email and password, then overwrite the stored record.
//     On validation failure storage is left untouched.
//   - Load: the last saved record, or nil if absent or corrupt.
//   - Check: compare a candidate pair with the stored record.
//   - Clear: delete all persisted state, not only the credentials.
type CredentialStore interface {
	Save(ctx context.Context, email, password string) error
	Load(ctx context.Context) (*models.AuthRecord, error)
	Check(ctx context.Context, email, password string) error
	Clear(ctx context.Context) error
}

type credentialStore struct {
	records recordStore[models.AuthRecord]
	repo    storage.Repository
	opts    options
}

func NewCredentialStore(repo storage.Repository, opts ...Option) CredentialStore {
	o := buildOptions(opts)
	return &credentialStore{
		records: recordStore[models.AuthRecord]{key: KeyAuth, repo: repo, opts: o},
		repo:    repo,
		opts:    o,
	}
}

// ValidateCredentials applies the email and password rules and reports
// every failing field.
func ValidateCredentials(email, password string) error {
	var c validation.Collector
	checkCredentials(&c, email, password)
	return c.Err()
}

func checkCredentials(c *validation.Collector, email, password string) {
	c.Check(validation.ValidateEmail(email), validation.FieldEmail, "enter a valid email address")
	c.Check(validation.ValidatePassword(password), validation.FieldPassword,
		fmt.Sprintf("password must be longer than %d characters", validation.MinPasswordLength))
}

// ValidateSignUp is ValidateCredentials plus the confirmation check of the
// sign-up form.
func ValidateSignUp(email, password, confirm string) error {
	var c validation.Collector
	checkCredentials(&c, email, password)
	c.Check(password == confirm, validation.FieldPasswordConfirm, common.ErrPasswordMismatch.Error())
	return c.Err()
}

func (s *credentialStore) Save(ctx context.Context, email, password string) error {
	if err := ValidateCredentials(email, password); err != nil {
		s.opts.observer.ObserveSave(KeyAuth, metrics.OutcomeInvalid)
		return err
	}
	return s.records.save(ctx, &models.AuthRecord{Email: email, Password: password})
}

func (s *credentialStore) Load(ctx context.Context) (*models.AuthRecord, error) {
	return s.records.load(ctx)
}

// Check returns common.ErrUnauthorized when no record is stored or the pair
// differs from it.
func (s *credentialStore) Check(ctx context.Context, email, password string) error {
	rec, err := s.records.load(ctx)
	if err != nil {
		return err
	}
	if rec == nil {
		return common.ErrUnauthorized
	}

	emailOK := subtle.ConstantTimeCompare([]byte(rec.Email), []byte(email))
	passOK := subtle.ConstantTimeCompare([]byte(rec.Password), []byte(password))
	if emailOK&passOK != 1 {
		return common.ErrUnauthorized
	}
	return nil
}

func (s *credentialStore) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear: %w", common.ErrStorage, err)
	}
	s.opts.logger.Info(ctx, "local storage cleared")
	return nil
}
