package errors

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound    = errors.New("configuration file not found")
	ErrNoAlerts          = errors.New("configuration defines no alerts")
	ErrUnsupportedFormat = errors.New("unsupported config file extension")
)

// ValidationError reports a malformed alert date in the configuration.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid date format for %s: %q, please use YYYY-MM-DD", e.Field, e.Value)
}

// FetchError reports a non-200 response from the availability API.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching data: %d", e.StatusCode)
}
