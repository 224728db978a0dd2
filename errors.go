package partials

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolution failures.
// All use prefix "partials:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrInvalidTemplateName = errors.New("partials: template name is empty or malformed")
	ErrInvalidCollection   = errors.New("partials: collection is not an ordered sequence")
)

// NameError wraps ErrInvalidTemplateName with the offending name and reason.
// Use errors.Is(err, ErrInvalidTemplateName) and errors.As(err, &nameErr) to inspect.
type NameError struct {
	Name   string
	Reason string
	Err    error
}

// Error implements error.
func (e *NameError) Error() string {
	return fmt.Sprintf("partials: name %q: %s: %v", e.Name, e.Reason, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *NameError) Unwrap() error { return e.Err }

// Compile-time check that NameError implements error.
var _ error = (*NameError)(nil)
