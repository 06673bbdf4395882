package nutrition

import (
	"errors"
	"fmt"
)

// ErrUnavailable means a computed value came out non-finite because of bad or
// missing biometric input. Callers render it as "unavailable" rather than
// treating it as a crash.
var ErrUnavailable = errors.New("nutrition targets unavailable")

// ValidationError reports an out-of-range or otherwise rejected input. It is
// surfaced to the caller as-is, never silently corrected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func validationErrorf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
