package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/hopmate/hopmate/internal/models"
)

// EmailPattern is a pragmatic email shape check: one '@', a non-empty local
// part and a dotted domain. Full RFC 5322 parsing is deliberately avoided.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen is the minimum password length
	MinPasswordLen = 8
	// MinAge is the minimum account-holder age in years
	MinAge = 18
)

// ValidateEmail checks that email is present and shaped like an address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword enforces the registration password policy:
// at least 8 characters with a digit, a lowercase letter, an uppercase
// letter and a non-alphanumeric character.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSymbol = true
		}
	}

	switch {
	case !hasDigit:
		return fmt.Errorf("password must contain at least one digit")
	case !hasLower:
		return fmt.Errorf("password must contain at least one lowercase letter")
	case !hasUpper:
		return fmt.Errorf("password must contain at least one uppercase letter")
	case !hasSymbol:
		return fmt.Errorf("password must contain at least one non-alphanumeric character")
	}

	return nil
}

// ValidateFullName checks that the full name is non-blank.
func ValidateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("full name is required")
	}
	return nil
}

// ParseDateOfBirth parses an ISO date and checks that it represents an age
// of at least 18 years at the given instant.
func ParseDateOfBirth(dateOfBirth string, now time.Time) (time.Time, error) {
	if dateOfBirth == "" {
		return time.Time{}, fmt.Errorf("date of birth is required")
	}

	dob, err := time.Parse(models.DateLayout, dateOfBirth)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date of birth format, expected YYYY-MM-DD")
	}

	if Age(dob, now) < MinAge {
		return time.Time{}, fmt.Errorf("you must be at least %d years old to register", MinAge)
	}

	return dob, nil
}

// Age returns full years between dob and now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	// Birthday not reached yet this year
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return years
}
