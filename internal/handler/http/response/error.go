package response

import (
	"errors"
	"net/http"

	"github.com/peopledesk/peopledesk-backend/internal/domain/auth"
	"github.com/peopledesk/peopledesk-backend/internal/domain/employee"
	"github.com/peopledesk/peopledesk-backend/internal/domain/user"
	"github.com/peopledesk/peopledesk-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrSessionIdle):
		Unauthorized(w, "Session expired due to inactivity")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidID):
		BadRequest(w, "Invalid employee id", nil)
	case errors.Is(err, employee.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", nil)
	case errors.Is(err, employee.ErrInvalidPhotoFormat):
		BadRequest(w, "Only jpg, jpeg and png photos are accepted", nil)
	case errors.Is(err, employee.ErrPhotoReadFailed):
		BadRequest(w, "Could not read the uploaded photo", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
