package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCampaignNotFound is returned when an operation references an
	// unknown campaign id.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrBrandNotFound is returned when an operation references an unknown
	// brand id.
	ErrBrandNotFound = errors.New("brand not found")
)

// ValidationError reports malformed input to an engine operation, such as a
// non-positive spend amount. It is returned to the caller and never pauses
// or aborts anything else.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCampaignNotFound) || errors.Is(err, ErrBrandNotFound)
}
