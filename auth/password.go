package auth

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const minPasswordLength = 8

// Lowercased passwords rejected outright. Entries shorter than the minimum
// length are filtered by the length rule first, so the list only carries
// eight-plus character entries.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwertyuiop":  {},
	"qwerty123":   {},
	"asdfghjkl":   {},
	"iloveyou":    {},
	"sunshine":    {},
	"princess":    {},
	"football":    {},
	"baseball":    {},
	"superman":    {},
	"welcome1":    {},
	"abc12345":    {},
	"letmein123":  {},
	"trustno1":    {},
	"liverpool":   {},
	"whatever":    {},
	"computer":    {},
	"michelle":    {},
	"jennifer":    {},
	"11111111":    {},
	"aa123456":    {},
	"dragon123":   {},
	"master123":   {},
	"shadow123":   {},
	"monkey123":   {},
}

// ValidatePassword applies the signup strength rules: minimum length
// (whitespace counts), not too similar to the username, not a known common
// password, not entirely numeric. Returns the first rule violated.
func ValidatePassword(password, username string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return errors.New("This password is too short. It must contain at least 8 characters.")
	}

	if username != "" {
		lowerPassword := strings.ToLower(password)
		lowerUsername := strings.ToLower(username)
		if strings.Contains(lowerPassword, lowerUsername) || strings.Contains(lowerUsername, lowerPassword) {
			return errors.New("The password is too similar to the username.")
		}
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		return errors.New("This password is too common.")
	}

	allNumeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return errors.New("This password is entirely numeric.")
	}

	return nil
}
