package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rockside/internal/client/screens"
	"github.com/dmitrijs2005/rockside/internal/client/services"
	"github.com/dmitrijs2005/rockside/internal/common"
)

// mountSignIn prefills the email from the stored credentials.
func (a *App) mountSignIn(ctx context.Context) {
	a.prefillEmail = ""

	rec, err := a.credentials.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not load stored credentials", "error", err)
	}
	if rec != nil {
		a.prefillEmail = rec.Email
		a.printf("Stored account: %s\n", rec.Email)
	}
	a.println("Type 'continue' to sign in or 'signup' to create an account.")
}

func (a *App) signInCommands() []command {
	return []command{
		{name: "continue", help: "sign in with email and password", run: a.SignIn},
		{name: "signup", help: "go to sign up", run: func(context.Context) error {
			a.nav.Navigate(screens.SignUp)
			return nil
		}},
	}
}

// SignIn prompts for an email (the stored one is kept on empty input) and
// a password, checks their syntax and opens Home.
//
// Unless strict sign-in is enabled the pair is not compared with the
// stored credentials; a mismatch with a stored account is only logged.
func (a *App) SignIn(ctx context.Context) error {
	prompt := "Email address"
	if a.prefillEmail != "" {
		prompt = fmt.Sprintf("Email address [%s]", a.prefillEmail)
	}
	email, err := a.ask(prompt)
	if err != nil {
		return err
	}
	if email == "" {
		email = a.prefillEmail
	}

	pw, err := a.askPassword("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	password := string(pw)

	if err := services.ValidateCredentials(email, password); err != nil {
		a.alertValidation(ctx, err, alertBadCredentials)
		return nil
	}

	if a.strictSignIn {
		if err := a.credentials.Check(ctx, email, password); err != nil {
			if errors.Is(err, common.ErrUnauthorized) {
				a.notifier.Alert(ctx, alertBadCredentials)
				return nil
			}
			a.notifier.Alert(ctx, alertSignInFailed)
			return err
		}
	} else if a.prefillEmail != "" {
		if err := a.credentials.Check(ctx, email, password); err != nil {
			a.log.Warn(ctx, "sign-in does not match stored credentials", "email", email, "error", err)
		}
	}

	a.userEmail = email
	a.log.Info(ctx, "signed in", "email", email, "strict", a.strictSignIn)
	a.nav.Navigate(screens.Home)
	return nil
}
