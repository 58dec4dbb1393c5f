// Package validation holds the checks applied to caller input before any
// upstream call is made.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minCityNameLength = 2

// Messages are shown to end users by the frontend, which is in Portuguese.
const (
	msgCityTooShort    = "Nome da cidade deve ter pelo menos 2 caracteres"
	msgCityLettersOnly = "Nome da cidade deve conter apenas letras"
)

// ValidationError reports a malformed city name. Message is safe to return
// to the caller as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateCity rejects names shorter than two characters once surrounding
// whitespace is trimmed, and names that contain anything other than letters
// after spaces and hyphens are removed. The input is never modified.
func ValidateCity(city string) error {
	if utf8.RuneCountInString(strings.TrimSpace(city)) < minCityNameLength {
		return &ValidationError{Message: msgCityTooShort}
	}

	stripped := strings.NewReplacer(" ", "", "-", "").Replace(city)
	if stripped == "" {
		return &ValidationError{Message: msgCityLettersOnly}
	}

	for _, r := range stripped {
		if !unicode.IsLetter(r) {
			return &ValidationError{Message: msgCityLettersOnly}
		}
	}

	return nil
}
