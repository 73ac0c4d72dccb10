package entry

import (
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/timeutil"
)

var (
	ErrEmptyName       = errors.New("entry: task name is required")
	ErrInvalidDuration = errors.New("entry: task duration is invalid")
	ErrDuplicateTask   = errors.New("entry: a task with the same name and duration already exists")
)

// ValidationError reports user input that must be corrected before a task
// can be saved.
type ValidationError struct {
	Field  string
	Reason error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Field, e.Reason, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field string, reason error, detail string) error {
	return &ValidationError{Field: field, Reason: reason, Detail: detail}
}

// DuplicateError reports that key is already taken in the target log.
func DuplicateError(key Key) error {
	return invalid("name", ErrDuplicateTask, fmt.Sprintf("%s, %s", key.Name, timeutil.FormatSpan(key.Duration)))
}
