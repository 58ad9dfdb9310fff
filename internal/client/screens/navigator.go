// Package screens holds the interface-independent screen model: the
// navigation stack and the questionnaire state machine. The terminal
// front end in package cli drives both.
package screens

import "slices"

type Screen string

const (
	Welcome Screen = "Welcome"
	SignIn  Screen = "SignIn"
	SignUp  Screen = "SignUp"
	Home    Screen = "Home"
)

// Title is the heading printed when a screen is shown.
func (s Screen) Title() string {
	switch s {
	case SignIn:
		return "Sign In"
	case SignUp:
		return "Sign Up"
	default:
		return string(s)
	}
}

// Navigator is a plain screen stack that starts at Welcome.
// The zero value is not usable; call NewNavigator.
type Navigator struct {
	stack []Screen
}

func NewNavigator() *Navigator {
	return &Navigator{stack: []Screen{Welcome}}
}

func (n *Navigator) Current() Screen {
	return n.stack[len(n.stack)-1]
}

// Navigate shows s. If s is already on the stack the entries above it are
// popped, otherwise s is pushed.
func (n *Navigator) Navigate(s Screen) {
	if i := slices.Index(n.stack, s); i >= 0 {
		n.stack = n.stack[:i+1]
		return
	}
	n.stack = append(n.stack, s)
}

// Back pops the current screen and reports whether it did. The root is
// never popped.
func (n *Navigator) Back() bool {
	if len(n.stack) == 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Reset replaces the whole stack with s.
func (n *Navigator) Reset(s Screen) {
	n.stack = []Screen{s}
}

// Stack returns a copy of the stack, root first.
func (n *Navigator) Stack() []Screen {
	return slices.Clone(n.stack)
}
