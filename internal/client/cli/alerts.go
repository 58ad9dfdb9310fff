package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/rockside/internal/validation"
)

// User-facing alert texts.
const (
	alertSaved          = "Your data has been saved successfully."
	alertInvalidForm    = "Make sure all the data has been entered correctly."
	alertSaveFailed     = "An error occurred while saving your data."
	alertNoImage        = "You did not select any image."
	alertBadImage       = "The selected file is not a supported image."
	alertPhotoFailed    = "The image could not be added."
	alertAccountCreated = "Your account has been created."
	alertBadCredentials = "The email or password is incorrect."
	alertSignInFailed   = "An error occurred while signing in."
	alertSignedOut      = "You have been signed out and local data was removed."
	alertSignOutFailed  = "An error occurred while signing out."
)

// alertValidation shows one alert per failed field. Other errors get
// fallback.
func (a *App) alertValidation(ctx context.Context, err error, fallback string) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		a.notifier.Alert(ctx, fallback)
		return
	}
	for _, f := range verr.Fields {
		a.notifier.Alert(ctx, f.Message)
	}
}
