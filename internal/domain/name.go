package domain

import "strings"

// PersonName is the first and last name of an entry's contact.
// Both parts are trimmed and non-empty; input casing is preserved.
// Compare with Equal, never with ==, because equality ignores case.
type PersonName struct {
	first string
	last  string
}

// NewPersonName trims both parts and rejects either one being blank.
// The first name is checked first, so "" "" reports FirstName.
func NewPersonName(firstName, lastName string) (PersonName, error) {
	first := strings.TrimSpace(firstName)
	if first == "" {
		return PersonName{}, newValidationError("first_name", ReasonFirstNameRequired)
	}
	last := strings.TrimSpace(lastName)
	if last == "" {
		return PersonName{}, newValidationError("last_name", ReasonLastNameRequired)
	}
	return PersonName{first: first, last: last}, nil
}

// FirstName returns the trimmed first name.
func (n PersonName) FirstName() string { return n.first }

// LastName returns the trimmed last name.
func (n PersonName) LastName() string { return n.last }

// IsZero reports whether n is the zero value, i.e. no name was constructed.
func (n PersonName) IsZero() bool {
	return n.first == "" && n.last == ""
}

// Equal reports whether both parts match ignoring case.
func (n PersonName) Equal(other PersonName) bool {
	return n.Key() == other.Key()
}

// Key is the case-folded form used for equality and as a map key.
// A NUL separator keeps ("ab","c") and ("a","bc") distinct.
func (n PersonName) Key() string {
	return strings.ToLower(n.first) + "\x00" + strings.ToLower(n.last)
}

// String returns "First Last". Listings are ordered by this value.
func (n PersonName) String() string {
	return n.first + " " + n.last
}
