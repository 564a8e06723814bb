package response

import (
	"errors"
	"net/http"

	"github.com/tagpoint/attendance-backend-go/internal/domain/attendance"
	"github.com/tagpoint/attendance-backend-go/internal/domain/employee"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/nfc"
	"github.com/tagpoint/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Storage-layer
// failures fall through to a generic 500 without exposing their text.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// NFC identifier errors
	case errors.Is(err, nfc.ErrInvalidTagID):
		BadRequest(w, "Invalid NFC tag identifier", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrTagIDExists):
		Conflict(w, "NFC tag identifier already registered")
	case errors.Is(err, employee.ErrNothingToUpdate):
		BadRequest(w, "Nothing to update", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidTagType):
		BadRequest(w, "tag_type must be check_in or check_out", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
