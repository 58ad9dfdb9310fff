package cli

import (
	"context"

	"github.com/dmitrijs2005/rockside/internal/client/screens"
)

func (a *App) mountWelcome(context.Context) {
	a.println("Rockside Consults")
	a.println("Technical Assessment")
	a.println("Type 'start' to begin or 'help' for commands.")
}

func (a *App) welcomeCommands() []command {
	return []command{
		{name: "start", help: "go to sign in", run: func(context.Context) error {
			a.nav.Navigate(screens.SignIn)
			return nil
		}},
	}
}
