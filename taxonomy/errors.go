package taxonomy

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an account type is not in the taxonomy.
var ErrNotFound = errors.New("account type not found")

// ValidationError describes one structural problem in a taxonomy definition.
type ValidationError struct {
	// AccountType is the offending account type; empty for table-level problems.
	AccountType string

	// Field names the offending part (weight, personas, modifiers.<category>, ...).
	Field string

	// Message describes the problem.
	Message string
}

func (e *ValidationError) Error() string {
	if e.AccountType == "" {
		return fmt.Sprintf("taxonomy %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("account type %q %s: %s", e.AccountType, e.Field, e.Message)
}

// IsValidationError returns true if err carries at least one ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
