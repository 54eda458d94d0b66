package domain

import (
	"fmt"
)

// FetchError is a transport, status or decoding failure while talking to a provider's site.
type FetchError struct {
	Provider ProviderID
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching from %s: %v", e.Provider, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the expected markup or JSON of a path is absent or malformed.
type ParseError struct {
	Provider ProviderID
	Path     string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing %q from %s: %v", e.Path, e.Provider, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Alert is the user-facing rendition of a failure.
type Alert struct {
	Title   string
	Message string
}

func NewAlert(err error, format string, args ...any) Alert {
	return Alert{
		Title:   fmt.Sprintf(format, args...),
		Message: err.Error(),
	}
}

func (a Alert) String() string {
	return a.Title + ": " + a.Message
}
