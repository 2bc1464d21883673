// Package validation contains the pure login-form checks: identifier
// classification (email vs. 10-digit phone), password rules, avatar initial
// derivation and opaque ID/token generation.
package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/mogligram/mogligram/internal/client/models"
)

var (
	ErrEmptyInput         = errors.New("email or phone is required")
	ErrInvalidPhoneLength = errors.New("phone number must be exactly 10 digits")
	ErrInvalidEmailFormat = errors.New("please enter a valid email address")

	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrMissingUppercase   = errors.New("password must contain at least 1 uppercase letter")
	ErrMissingDigit       = errors.New("password must contain at least 1 number")
	ErrMissingSpecialChar = errors.New("password must contain at least 1 special character")
)

var (
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	allDigitsRe = regexp.MustCompile(`^[0-9]+$`)
)

// passwordSpecials is the fixed punctuation set a password must draw from.
const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// Identifier is the successful outcome of ClassifyIdentifier.
type Identifier struct {
	Type models.IdentifierType
	// Value is the trimmed input.
	Value string
}

// ClassifyIdentifier trims value and decides whether it is an email or a
// phone number. All-digit input is a phone candidate and must be exactly
// 10 digits; anything else must look like local@domain.tld.
//
// The returned error is one of ErrEmptyInput, ErrInvalidPhoneLength or
// ErrInvalidEmailFormat; its message is suitable for direct display.
func ClassifyIdentifier(value string) (Identifier, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Identifier{}, ErrEmptyInput
	}

	if allDigitsRe.MatchString(trimmed) {
		if len(trimmed) != 10 {
			return Identifier{}, ErrInvalidPhoneLength
		}
		return Identifier{Type: models.IdentifierPhone, Value: trimmed}, nil
	}

	if !emailRe.MatchString(trimmed) {
		return Identifier{}, ErrInvalidEmailFormat
	}
	return Identifier{Type: models.IdentifierEmail, Value: trimmed}, nil
}

// ValidatePassword checks the password rules in a fixed order and reports
// only the first violated one: length >= 8, then an uppercase letter, then a
// digit, then a character from passwordSpecials. nil means the password is
// acceptable.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return ErrMissingUppercase
	}
	if !hasDigit {
		return ErrMissingDigit
	}
	if !hasSpecial {
		return ErrMissingSpecialChar
	}
	return nil
}

// DeriveInitial returns the single character shown in the avatar badge:
// "?" for empty input, the first digit for all-digit input, otherwise the
// upper-cased first character.
func DeriveInitial(value string) string {
	if value == "" {
		return "?"
	}
	runes := []rune(value)
	if allDigitsRe.MatchString(value) {
		return string(runes[0])
	}
	return strings.ToUpper(string(runes[0]))
}

// nowMillis is a test seam for the time component of generated IDs.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// GenerateUserID produces an opaque user identifier combining the current
// time and a random component. Collision-resistant at single-device scale,
// nothing more: not cryptographically meaningful, not globally unique.
func GenerateUserID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "user_" + formatMillis(nowMillis()) + "_" + random
}

// GenerateToken produces an opaque session token. The token carries no
// claims; it only marks a session as established.
func GenerateToken() string {
	return "token_" + formatMillis(nowMillis())
}

func formatMillis(ms int64) string {
	return strconv.FormatInt(ms, 10)
}
