// Package validation holds the field rules applied to credentials and
// questionnaire input before anything is persisted.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/rockside/internal/common"
)

// Field names reported in FieldError.Field.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldConsent         = "consent"
	FieldName            = "name"
	FieldPhoto           = "photo"
	FieldLocation        = "location"
)

const (
	// MinPasswordLength is exclusive: a password must be longer than this.
	MinPasswordLength = 5
	// MinNameLength is exclusive: a respondent name must be longer than this.
	MinNameLength = 2
)

// emailPattern accepts local@domain where the local part is a run of
// dot-separated atoms or a quoted string, and the domain is either a
// bracketed IPv4 literal or dotted labels ending in a 2+ letter TLD.
var emailPattern = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))` +
		`@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string
	Message string
}

// Error is returned when one or more fields fail their rule.
// It matches common.ErrValidation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool {
	return target == common.ErrValidation
}

// Has reports whether field is among the failed fields.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Collector accumulates field failures. The zero value is ready to use.
type Collector struct {
	fields []FieldError
}

// Check records a failure for field when ok is false.
func (c *Collector) Check(ok bool, field, message string) {
	if !ok {
		c.fields = append(c.fields, FieldError{Field: field, Message: message})
	}
}

// Err returns nil when nothing failed, otherwise an *Error.
func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}

func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword reports whether p is strictly longer than
// MinPasswordLength code points.
func ValidatePassword(p string) bool {
	return utf8.RuneCountInString(p) > MinPasswordLength
}

func ValidateName(n string) bool {
	return utf8.RuneCountInString(n) > MinNameLength
}
