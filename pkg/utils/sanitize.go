package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// SanitizeString trims single-line input and drops markup and control characters.
// Apostrophes and ampersands survive: business names carry them.
func SanitizeString(input string) string {
	input = htmlTagRegex.ReplaceAllString(strings.TrimSpace(input), "")
	var b strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	email = htmlTagRegex.ReplaceAllString(email, "")
	return removeControlChars(email)
}

// SanitizePhone keeps digits and the usual phone punctuation.
func SanitizePhone(phone string) string {
	phone = htmlTagRegex.ReplaceAllString(strings.TrimSpace(phone), "")

	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) || strings.ContainsRune("+- ()", r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeText is SanitizeString for multi-line notes.
func SanitizeText(input string) string {
	input = htmlTagRegex.ReplaceAllString(strings.TrimSpace(input), "")

	var b strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeOptional applies SanitizeString to a non-nil pointer.
func SanitizeOptional(input *string) *string {
	if input == nil {
		return nil
	}
	v := SanitizeString(*input)
	return &v
}

func removeControlChars(input string) string {
	var b strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func ValidateAndSanitizeEmail(email string) (string, error) {
	sanitized := SanitizeEmail(email)
	if !IsValidEmail(sanitized) {
		return "", fmt.Errorf("invalid email format")
	}
	return sanitized, nil
}
