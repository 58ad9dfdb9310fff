package cli

import (
	"context"

	"github.com/dmitrijs2005/rockside/internal/client/screens"
	"github.com/dmitrijs2005/rockside/internal/client/services"
	"github.com/dmitrijs2005/rockside/internal/common"
)

func (a *App) mountSignUp(context.Context) {
	a.println("Type 'create' to create an account or 'signin' if you already have one.")
}

func (a *App) signUpCommands() []command {
	return []command{
		{name: "create", help: "create an account on this device", run: a.SignUp},
		{name: "signin", help: "go to sign in", run: func(context.Context) error {
			a.nav.Navigate(screens.SignIn)
			return nil
		}},
	}
}

// SignUp prompts for email, password and its confirmation, stores the
// credentials and opens Home. Nothing is stored when a field is invalid.
func (a *App) SignUp(ctx context.Context) error {
	email, err := a.ask("Email address")
	if err != nil {
		return err
	}

	pw, err := a.askPassword("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	confirm, err := a.askPassword("Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := services.ValidateSignUp(email, string(pw), string(confirm)); err != nil {
		a.alertValidation(ctx, err, alertSaveFailed)
		return nil
	}

	if err := a.credentials.Save(ctx, email, string(pw)); err != nil {
		a.alertValidation(ctx, err, alertSaveFailed)
		return err
	}

	a.userEmail = email
	a.log.Info(ctx, "account created", "email", email)
	a.notifier.Alert(ctx, alertAccountCreated)
	a.nav.Navigate(screens.Home)
	return nil
}
