package parser

import "errors"

// ErrNoContent is returned when the body selector yields no text.
var ErrNoContent = errors.New("no content extracted")

// ErrUnexpectedStatus indicates an HTTP response with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// FetchError reports that an article page could not be retrieved. The
// article is skipped; the rest of the source continues.
type FetchError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return "fetch " + e.URL + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports that a fetched page yielded no usable article content.
type ParseError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "parse " + e.URL + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
