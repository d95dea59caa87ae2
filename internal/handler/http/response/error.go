package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Field-level overtime errors carry their own details
	var overtimeErr *overtime.Error
	if errors.As(err, &overtimeErr) {
		switch overtimeErr.Kind {
		case overtime.KindValidation:
			ValidationError(w, overtimeErr.Details())
		default:
			BadRequest(w, overtimeErr.Message, overtimeErr.Details())
		}
		return
	}

	switch {
	case errors.Is(err, overtime.ErrMissingClaims):
		Unauthorized(w, "Company claim is missing from token")
	case errors.Is(err, overtime.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, overtime.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, overtime.ErrSummariesNotFound):
		NotFound(w, "No attendance summaries found for this period")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
