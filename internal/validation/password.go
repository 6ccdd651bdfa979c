package validation

import (
	"strings"
)

// ValidatePassword validates password strength: minimum 12 characters,
// blocks common patterns.
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return newError("password must be at least 12 characters")
	}

	// bcrypt silently truncates beyond 72 bytes
	if len(password) > 72 {
		return newError("password must not exceed 72 characters")
	}

	lower := strings.ToLower(password)
	commonPatterns := []string{
		"password", "123456", "qwerty", "admin", "letmein",
		"welcome", "contrasena",
	}

	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			return newError("password is too common, please choose a stronger one")
		}
	}

	return nil
}
