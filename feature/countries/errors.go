package countries

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no country matches a name.
	ErrNotFound = errors.New("country not found")
	// ErrNoMetadata is returned when no refresh has completed yet.
	ErrNoMetadata = errors.New("no refresh has completed yet")
)

// NotFoundError reports the name that did not match any country.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("country %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError reports an invalid request input. No I/O is performed
// when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func requireName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "Country name is required"}
	}
	return nil
}
