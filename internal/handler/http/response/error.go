package response

import (
	"errors"
	"net/http"

	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/auth"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/job"
	"github.com/begoneskadedjur/kundportal-sub011/internal/domain/technician"
	"github.com/begoneskadedjur/kundportal-sub011/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Record store errors. A fetch failure aborts the whole aggregation;
	// nothing partial is ever returned.
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, technician.ErrTechnicianNotFound):
		NotFound(w, "Technician not found")
	case errors.Is(err, job.ErrFetchFailed), errors.Is(err, technician.ErrFetchFailed):
		BadGateway(w, "Record store query failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
