package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/rockside/internal/client/device"
	"github.com/dmitrijs2005/rockside/internal/client/screens"
	"github.com/dmitrijs2005/rockside/internal/client/services"
	"github.com/dmitrijs2005/rockside/internal/common"
	"github.com/dmitrijs2005/rockside/internal/metrics"
)

// mountHome starts a fresh questionnaire and takes one location reading.
func (a *App) mountHome(ctx context.Context) {
	a.form = screens.NewHomeForm(a.now(), services.LocationWaiting)

	if a.userEmail != "" {
		a.printf("Signed in as %s\n", a.userEmail)
	}
	a.printf("Date: %s\n", a.form.Date())

	if prev, err := a.questionnaire.Load(ctx); err != nil {
		a.log.Warn(ctx, "could not load saved questionnaire", "error", err)
	} else if prev != nil {
		a.printf("Last saved questionnaire: %s (%s)\n", prev.Name, prev.Date)
	}

	a.printf("Location: %s\n", a.form.LocationStatus)
	res, err := a.location.Acquire(ctx)
	if err != nil {
		a.log.Warn(ctx, "location unavailable", "error", err)
	}
	a.form.SetLocation(res.Location, res.Status)
	if res.Status != services.LocationWaiting {
		a.printf("Location: %s\n", res.Status)
	}

	a.println("Type 'consent' to agree to the terms and open the questionnaire.")
}

func (a *App) homeCommands() []command {
	return []command{
		{name: "consent", help: "give or withdraw consent", run: a.toggleConsent},
		{name: "name", help: "enter your name", gated: true, run: a.enterName},
		{name: "photo", help: "choose a photo", gated: true, run: a.pickPhoto},
		{name: "comments", help: "enter comments", gated: true, run: a.enterComments},
		{name: "location", help: "show the location status", gated: true, run: a.showLocation},
		{name: "save", help: "save the questionnaire", gated: true, run: a.saveForm},
		{name: "show", help: "show the questionnaire", run: a.showForm},
		{name: "logout", help: "sign out and remove local data", run: a.Logout},
	}
}

func (a *App) toggleConsent(context.Context) error {
	if a.form.ToggleConsent() {
		a.println("Consent given. The questionnaire is open.")
	} else {
		a.println("Consent withdrawn. The questionnaire is hidden.")
	}
	return nil
}

func (a *App) enterName(context.Context) error {
	name, err := a.ask("Name")
	if err != nil {
		return err
	}
	a.form.SetName(name)
	return nil
}

func (a *App) enterComments(context.Context) error {
	comments, err := a.ask("Comments")
	if err != nil {
		return err
	}
	a.form.SetComments(comments)
	return nil
}

func (a *App) pickPhoto(ctx context.Context) error {
	ref, err := a.photos.PickImage(ctx)
	switch {
	case err == nil:
	case errors.Is(err, device.ErrCancelled):
		a.photoObserver.ObservePhoto(metrics.OutcomeCancelled)
		a.notifier.Alert(ctx, alertNoImage)
		return nil
	case errors.Is(err, device.ErrUnsupportedImage):
		a.photoObserver.ObservePhoto(metrics.OutcomeInvalid)
		a.notifier.Alert(ctx, alertBadImage)
		return nil
	default:
		a.photoObserver.ObservePhoto(metrics.OutcomeError)
		a.notifier.Alert(ctx, alertPhotoFailed)
		return err
	}

	a.photoObserver.ObservePhoto(metrics.OutcomeOK)
	a.form.SetPhoto(ref)
	a.printf("Photo: %s\n", ref)
	return nil
}

func (a *App) showLocation(context.Context) error {
	a.printf("Location: %s\n", a.form.LocationStatus)
	return nil
}

func (a *App) saveForm(ctx context.Context) error {
	err := a.form.Submit(ctx, a.questionnaire)
	switch {
	case err == nil:
		a.notifier.Alert(ctx, alertSaved)
		return nil
	case errors.Is(err, common.ErrValidation):
		a.notifier.Alert(ctx, alertInvalidForm)
		a.alertValidation(ctx, err, alertInvalidForm)
		return nil
	default:
		a.notifier.Alert(ctx, alertSaveFailed)
		return err
	}
}

func (a *App) showForm(context.Context) error {
	f := a.form
	rec := f.Record()

	a.printf("Date:     %s\n", rec.Date)
	a.printf("Consent:  %s\n", yesNo(rec.Consent))
	if f.FormVisible() {
		a.printf("Name:     %s\n", rec.Name)
		photo := "(none)"
		if rec.Photo != nil {
			photo = *rec.Photo
		}
		a.printf("Photo:    %s\n", photo)
		a.printf("Location: %s\n", f.LocationStatus)
		a.printf("Comments: %s\n", rec.Comments)
	}
	a.printf("Status:   %s\n", f.State())
	return nil
}

// Logout removes every stored record and starts over at Sign Up.
func (a *App) Logout(ctx context.Context) error {
	if err := a.credentials.Clear(ctx); err != nil {
		a.notifier.Alert(ctx, alertSignOutFailed)
		return err
	}

	a.userEmail = ""
	a.prefillEmail = ""
	a.form = nil
	a.nav.Reset(screens.SignUp)
	a.notifier.Alert(ctx, alertSignedOut)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
