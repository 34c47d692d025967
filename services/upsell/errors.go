package upsell

import (
	"errors"
	"fmt"
)

// ErrQuoteNotFound is returned when a quote id is unknown or expired.
var ErrQuoteNotFound = errors.New("quote not found or expired")

type UpsellError struct {
	Code    string
	Message string
}

func (e *UpsellError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &UpsellError{
		Code:    "invalidSelection",
		Message: msg,
	}
}

// IsValidationError reports whether err was caused by invalid caller input.
func IsValidationError(err error) bool {
	var ue *UpsellError
	return errors.As(err, &ue) && ue.Code == "invalidSelection"
}
