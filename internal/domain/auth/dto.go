package auth

import (
	"strings"

	"github.com/peopledesk/peopledesk-backend/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks syntax on the normalized email, matching how the service
// looks it up (trimmed, case-insensitive).
func (r LoginRequest) Validate() error {
	email := strings.TrimSpace(r.Email)

	var errs validator.ValidationErrors
	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Please enter a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserInfo is the signed-in identity exposed to the client shell.
type UserInfo struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	DisplayName  string  `json:"display_name"`
	Role         string  `json:"role"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
}

// LoginResponse carries the access token; the refresh token travels in an
// http-only cookie.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresAt   int64    `json:"expires_at"`
	User        UserInfo `json:"user"`
}
