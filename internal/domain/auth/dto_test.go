package auth

import (
	"testing"

	"github.com/peopledesk/peopledesk-backend/internal/pkg/validator"
)

func TestLoginRequestValidate(t *testing.T) {
	valid := []LoginRequest{
		{Email: "admin@corp.com", Password: "s3cret"},
		{Email: "  Admin@Corp.com ", Password: "s3cret"},
		{Email: "user.name+1@domain.co", Password: "p"},
	}
	for _, req := range valid {
		if err := req.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", req.Email, err)
		}
	}

	tests := []struct {
		name  string
		req   LoginRequest
		field string
	}{
		{"missing email", LoginRequest{Password: "s3cret"}, "email"},
		{"whitespace email", LoginRequest{Email: "   ", Password: "s3cret"}, "email"},
		{"bad email syntax", LoginRequest{Email: "not-an-email", Password: "s3cret"}, "email"},
		{"missing password", LoginRequest{Email: "admin@corp.com"}, "password"},
	}
	for _, tt := range tests {
		err := tt.req.Validate()
		errs, ok := err.(validator.ValidationErrors)
		if !ok || len(errs) == 0 {
			t.Errorf("%s: Validate() = %v, want ValidationErrors", tt.name, err)
			continue
		}
		if errs[0].Field != tt.field {
			t.Errorf("%s: field = %q, want %q", tt.name, errs[0].Field, tt.field)
		}
	}
}
