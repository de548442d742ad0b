package utils

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	passwordCost     = 12
	minPasswordChars = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(hashed), err
}

func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// ValidatePassword names every rule the password breaks.
func ValidatePassword(password string) error {
	if len(password) > maxPasswordBytes {
		return errors.New("password must be at most 72 bytes")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	chars := 0
	for _, r := range password {
		chars++
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var missing []string
	if chars < minPasswordChars {
		missing = append(missing, "at least 8 characters")
	}
	if !hasUpper {
		missing = append(missing, "an uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "a lowercase letter")
	}
	if !hasNumber {
		missing = append(missing, "a number")
	}
	if !hasSpecial {
		missing = append(missing, "a special symbol")
	}
	if len(missing) > 0 {
		return errors.New("password needs " + strings.Join(missing, ", "))
	}
	return nil
}
