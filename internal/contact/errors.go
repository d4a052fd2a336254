package contact

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller-checkable conditions. Each typed error below
// matches its sentinel via errors.Is.
var (
	ErrValidation      = errors.New("contact: validation failed")
	ErrNotFound        = errors.New("contact: not found")
	ErrInvalidArgument = errors.New("contact: invalid argument")
)

// ValidationError reports malformed name, phone or birthday input.
type ValidationError struct {
	Field  string // "name", "phone" or "birthday".
	Value  string // Raw input that failed.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an operation that referenced a missing contact,
// phone or birthday.
type NotFoundError struct {
	Kind string // "contact", "phone" or "birthday".
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidArgumentError reports a query argument outside its domain, such as
// a negative day window or a non-integer count.
type InvalidArgumentError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
