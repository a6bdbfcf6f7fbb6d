package identity

import (
	"regexp"
	"strings"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration checks the sign-up form. It runs before any provider
// call, so invalid input never leaves the process. The first failing field
// wins, matching inline per-field rendering.
func ValidateRegistration(name, email, password string) *models.ValidationError {
	if strings.TrimSpace(name) == "" {
		return &models.ValidationError{Field: "name", Message: "Full name is required."}
	}
	if !emailPattern.MatchString(email) {
		return &models.ValidationError{Field: "email", Message: "Please enter a valid email address."}
	}
	if len(password) < 6 {
		return &models.ValidationError{Field: "password", Message: "Password must be at least 6 characters long."}
	}
	return nil
}
