package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail applies the basic address-syntax check.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Person names may contain letters, spaces, hyphens and apostrophes.
var nameRegex = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

// IsValidName reports whether s is a plausible person name of at least two
// characters after trimming.
func IsValidName(s string) bool {
	trimmed := strings.TrimSpace(s)
	return len(trimmed) >= 2 && nameRegex.MatchString(trimmed)
}

var (
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Accepted phone shapes: US-formatted, E.164 international, or a plain
	// digit string.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}$`),
		regexp.MustCompile(`^\+?[1-9]\d{1,14}$`),
		regexp.MustCompile(`^[0-9]{10,15}$`),
	}
)

// IsValidPhoneNumber requires 10-15 digits once formatting characters are
// stripped, and the raw input to match one of the accepted shapes.
func IsValidPhoneNumber(phone string) bool {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 15 {
		return false
	}
	for _, p := range phonePatterns {
		if p.MatchString(phone) {
			return true
		}
	}
	return false
}

// IsValidDate parses a "YYYY-MM-DD" calendar date.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// IsNotFutureDate reports whether dateStr parses and is no later than the end
// of today, so today's date itself passes.
func IsNotFutureDate(dateStr string, now time.Time) bool {
	date, ok := IsValidDate(dateStr)
	if !ok {
		return false
	}
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	return !date.After(endOfToday)
}

// IsInSlice reports whether value is one of slice's elements.
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
