package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Digit-count bounds for a phone number, inclusive. The upper bound leaves
// room for a country code such as +98.
const (
	PhoneMinDigits = 8
	PhoneMaxDigits = 12
)

// PhoneNumber is a normalized phone number. Value keeps digits (any Unicode
// decimal digit) and any '+' from the input; all other punctuation and
// spacing is discarded.
// Two numbers are equal when their digits match, so "+98 21 1234567" and
// "98211234567" are the same number.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber normalizes raw and validates its digit count.
// Blank input and digit counts outside [PhoneMinDigits, PhoneMaxDigits] are
// both rejected with ReasonPhoneInvalid.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PhoneNumber{}, newValidationError("phone_number", ReasonPhoneInvalid)
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, trimmed)

	n := utf8.RuneCountInString(digitsOnly(cleaned))
	if n < PhoneMinDigits || n > PhoneMaxDigits {
		return PhoneNumber{}, newValidationError("phone_number", ReasonPhoneInvalid)
	}
	return PhoneNumber{value: cleaned}, nil
}

// Value returns the normalized number, including any '+'.
func (p PhoneNumber) Value() string { return p.value }

// Digits returns the number with '+' removed. This is the projection used
// for equality.
func (p PhoneNumber) Digits() string { return digitsOnly(p.value) }

// IsZero reports whether p is the zero value.
func (p PhoneNumber) IsZero() bool { return p.value == "" }

// Equal compares the digits-only projections.
func (p PhoneNumber) Equal(other PhoneNumber) bool {
	return p.Digits() == other.Digits()
}

// Key returns the digits-only projection for use as a map key.
func (p PhoneNumber) Key() string { return p.Digits() }

// String returns Value.
func (p PhoneNumber) String() string { return p.value }

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
