package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test @example.com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidName(t *testing.T) {
	valid := []string{"Jane", "Mary-Jane", "O'Brien", "De La Cruz", "al"}
	invalid := []string{"J", " J ", "Jane2", "Jane_Doe", "", "  "}
	for _, name := range valid {
		if !IsValidName(name) {
			t.Errorf("IsValidName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsValidName(name) {
			t.Errorf("IsValidName(%q) = true, want false", name)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{
		"555-123-4567",
		"(555) 123-4567",
		"+1 555 123 4567",
		"5551234567",
		"+442071838750",
		"123456789012345",
	}
	invalid := []string{
		"123",          // too few digits
		"555-1234",     // seven digits
		"abc-def-ghij", // no digits
		"",
		"1234567890123456", // sixteen digits
	}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsNotFutureDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		input string
		want  bool
	}{
		{"2024-06-15", true}, // today passes
		{"2024-06-14", true},
		{"2020-01-01", true},
		{"2024-06-16", false},
		{"2030-01-01", false},
		{"garbage", false},
	}
	for _, c := range cases {
		got := IsNotFutureDate(c.input, now)
		if got != c.want {
			t.Errorf("IsNotFutureDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("b", slice) {
		t.Error(`IsInSlice("b") = false, want true`)
	}
	if IsInSlice("d", slice) {
		t.Error(`IsInSlice("d") = true, want false`)
	}
	if IsInSlice("a", nil) {
		t.Error(`IsInSlice("a", nil) = true, want false`)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "Email is required"},
		{Field: "phone", Message: "Phone number is required"},
	}

	if got := errs.Error(); got != "Email is required; Phone number is required" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if m["email"] != "Email is required" || m["phone"] != "Phone number is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
