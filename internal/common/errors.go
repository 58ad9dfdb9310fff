// Package common defines sentinel errors and small helpers shared by the
// rockside client packages. Callers should use errors.Is to match the
// sentinels; concrete errors wrap them.
package common

import "errors"

var (
	// ErrValidation marks user input rejected by a field rule. The concrete
	// error is *validation.Error, which lists the failing fields.
	ErrValidation = errors.New("validation error")

	// ErrStorage marks a failed read, write or (de)serialization of a
	// persisted record.
	ErrStorage = errors.New("storage error")

	// ErrUnauthorized is returned by a strict sign-in when the entered
	// credentials do not match the stored record.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPasswordMismatch is returned on sign up when the confirmation
	// differs from the password.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
