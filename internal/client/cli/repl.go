package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/rockside/internal/client/screens"
)

// command is one entry of a screen's command set.
type command struct {
	name string
	help string
	// gated commands need the questionnaire form to be visible.
	gated bool
	run   func(ctx context.Context) error
}

// commands returns the command set of screen s.
func (a *App) commands(s screens.Screen) []command {
	switch s {
	case screens.Welcome:
		return a.welcomeCommands()
	case screens.SignIn:
		return a.signInCommands()
	case screens.SignUp:
		return a.signUpCommands()
	case screens.Home:
		return a.homeCommands()
	default:
		return nil
	}
}

func (a *App) mount(ctx context.Context, s screens.Screen) {
	a.println()
	a.println("== " + s.Title() + " ==")

	switch s {
	case screens.Welcome:
		a.mountWelcome(ctx)
	case screens.SignIn:
		a.mountSignIn(ctx)
	case screens.SignUp:
		a.mountSignUp(ctx)
	case screens.Home:
		a.mountHome(ctx)
	}
}

// Run is the read–eval–print loop. A screen's mount hook runs every time
// the screen becomes current. Run returns nil when the user exits, input
// ends or ctx is cancelled.
//
// Commands on every screen:
//
//	help         show the commands of the current screen
//	back         return to the previous screen
//	exit | quit  leave the program
//
// Errors returned by screen commands are logged here; commands show their
// own alerts to the user.
func (a *App) Run(ctx context.Context) error {
	var mounted screens.Screen
	for {
		if ctx.Err() != nil {
			return nil
		}

		cur := a.nav.Current()
		if cur != mounted {
			a.mount(ctx, cur)
			mounted = cur
		}

		a.printf("rockside [%s]> ", cur.Title())
		line, err := a.readCommand(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.println()
			return nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.println()
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name := strings.ToLower(parts[0])

		switch name {
		case "help":
			a.printHelp(cur)
			continue
		case "back":
			if !a.nav.Back() {
				a.println("Nothing to go back to.")
			}
			continue
		case "exit", "quit":
			a.println("Bye!")
			return nil
		}

		cmd, ok := a.lookup(cur, name)
		if !ok {
			a.println("Unknown command:", name)
			continue
		}
		if cmd.gated && (a.form == nil || !a.form.FormVisible()) {
			a.println("Give your consent first: type 'consent'.")
			continue
		}

		if err := cmd.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				a.println()
				return nil
			}
			a.log.Error(ctx, "command failed", "screen", string(cur), "command", name, "error", err)
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readCommand reads the next command line, giving up when ctx is done. A
// read abandoned on cancellation keeps its goroutine until input arrives or
// the reader is closed; Run does not read again after that.
func (a *App) readCommand(ctx context.Context) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := readLine(a.reader)
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

func (a *App) lookup(s screens.Screen, name string) (command, bool) {
	for _, c := range a.commands(s) {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (a *App) printHelp(s screens.Screen) {
	a.println("Available commands:")
	for _, c := range a.commands(s) {
		if c.gated && (a.form == nil || !a.form.FormVisible()) {
			continue
		}
		a.printf("  %-10s %s\n", c.name, c.help)
	}
	a.printf("  %-10s %s\n", "help", "show this list")
	if len(a.nav.Stack()) > 1 {
		a.printf("  %-10s %s\n", "back", "go to the previous screen")
	}
	a.printf("  %-10s %s\n", "exit", "leave the program")
}
