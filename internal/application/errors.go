package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateTitle   = errors.New("duplicate title")
	ErrNotInRecycleBin  = errors.New("not in recycle bin")
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DuplicateTitleError is returned when one or more titles collide
// case-insensitively with an existing resource (trashed ones included)
type DuplicateTitleError struct {
	Titles []string
}

func (e *DuplicateTitleError) Error() string {
	if len(e.Titles) == 1 {
		return fmt.Sprintf("a resource titled %q already exists (check the Recycle Bin too)", e.Titles[0])
	}
	return fmt.Sprintf("resources already exist with titles: %s", strings.Join(e.Titles, ", "))
}

func (e *DuplicateTitleError) Is(target error) bool {
	return target == ErrDuplicateTitle
}

// NotFoundError represents a lookup of an unknown id
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ImportParseError wraps a malformed import payload
type ImportParseError struct {
	Format string
	Err    error
}

func (e *ImportParseError) Error() string {
	return fmt.Sprintf("cannot parse %s import: %v", e.Format, e.Err)
}

func (e *ImportParseError) Unwrap() error {
	return e.Err
}
