package csv

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInputShape is returned when Encode or Decode receive a value they cannot
	// iterate over, e.g. a records argument that isn't a slice
	ErrInputShape = errors.New("csv: unexpected input shape")

	// ErrRequired is the cause of every ValidationError
	ErrRequired = errors.New("csv: required value is empty")
)

// ValidationError is returned by Decode when a required column resolves
// to an empty value
type ValidationError struct {
	Key string
	Row int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("csv: required column '%s' is empty on row %d", e.Key, e.Row)
}

// Cause lets errors.Cause reach ErrRequired
func (e *ValidationError) Cause() error {
	return ErrRequired
}

// Unwrap makes ValidationError work with the standard errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrRequired
}
