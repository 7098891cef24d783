package utils

import (
	"errors"
	"strings"
	"unicode"
)

// ValidateEmail checks that the address has a user part, a domain, and a
// dotted TLD. Full RFC parsing is left to the mail provider.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return errors.New("email must have a user and a domain part")
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot < 1 || dot == len(domain)-1 {
		return errors.New("email domain must contain a dot")
	}
	return nil
}

// ValidatePassword is the single password policy, applied at signup and on
// password changes so the two rules cannot drift apart.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.New("password must mix upper case, lower case and digits")
	}
	return nil
}
