// Package device describes the platform capabilities the questionnaire
// consumes (geolocation, photo library, user alerts) and provides terminal
// implementations of them.
package device

//go:generate mockgen -source=device.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/rockside/internal/client/models"
)

type Permission string

const (
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
	PermissionUndetermined Permission = "undetermined"
)

var (
	// ErrPermissionDenied is terminal: callers surface it and do not retry.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrCancelled means the user backed out of a picker.
	ErrCancelled = errors.New("cancelled by user")
	// ErrUnsupportedImage is returned for files that are not images.
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// Locator is the device geolocation capability.
type Locator interface {
	RequestPermission(ctx context.Context) (Permission, error)
	// CurrentPosition returns one fix. It fails with ErrPermissionDenied
	// unless permission was granted.
	CurrentPosition(ctx context.Context) (models.Location, error)
}

// PhotoPicker is the device media-library picker. PickImage returns a local
// file reference or ErrCancelled.
type PhotoPicker interface {
	PickImage(ctx context.Context) (string, error)
}

// Notifier shows short alert messages to the user.
type Notifier interface {
	Alert(ctx context.Context, msg string)
}

// Prompter asks the user a question and returns the trimmed answer.
type Prompter interface {
	Ask(prompt string) (string, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(prompt string) (string, error)

func (f PrompterFunc) Ask(prompt string) (string, error) { return f(prompt) }
