package pkg

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is returned by services when a user supplied value is rejected.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// WriteErrorOrValidation writes a 400 with {message, field} for validation errors,
// and a generic 500 for anything else.
func WriteErrorOrValidation(w http.ResponseWriter, err error, fallbackMessage string) bool {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		WriteJSON(w, vErr, http.StatusBadRequest)
		return true
	}
	WriteJSONError(w, fallbackMessage, http.StatusInternalServerError)
	return false
}
