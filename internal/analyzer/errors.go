package analyzer

import "errors"

// ErrEmptyInput is returned when input text is empty or every token was
// filtered out. Callers should treat it as a zero-result, not a failure.
var ErrEmptyInput = errors.New("no tokens after filtering")

// ValidationError reports article text that failed the quality checks.
type ValidationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid text: " + e.Reason
}
