package device

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/rockside/internal/client/models"
)

// PolicyPrompt makes TerminalLocator ask the user for permission.
const PolicyPrompt = "prompt"

// TerminalLocator grants location access according to a fixed policy or by
// asking the user once, and reports a configured position. The answer,
// including a denial, is remembered for the lifetime of the locator, like an
// OS permission.
type TerminalLocator struct {
	policy   string
	prompter Prompter
	position models.Location

	mu     sync.Mutex
	status Permission
}

// NewTerminalLocator returns a locator for policy "prompt", "granted" or
// "denied" (anything else behaves like "prompt").
func NewTerminalLocator(policy string, prompter Prompter, position models.Location) *TerminalLocator {
	return &TerminalLocator{
		policy:   policy,
		prompter: prompter,
		position: position,
		status:   PermissionUndetermined,
	}
}

func (l *TerminalLocator) RequestPermission(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return PermissionUndetermined, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.status != PermissionUndetermined {
		return l.status, nil
	}

	switch Permission(l.policy) {
	case PermissionGranted, PermissionDenied:
		l.status = Permission(l.policy)
		return l.status, nil
	}

	answer, err := l.prompter.Ask("Allow access to this device's location? [y/N]")
	if err != nil {
		return PermissionUndetermined, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		l.status = PermissionGranted
	default:
		l.status = PermissionDenied
	}
	return l.status, nil
}

func (l *TerminalLocator) CurrentPosition(ctx context.Context) (models.Location, error) {
	if err := ctx.Err(); err != nil {
		return models.Location{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.status != PermissionGranted {
		return models.Location{}, ErrPermissionDenied
	}
	return l.position, nil
}
