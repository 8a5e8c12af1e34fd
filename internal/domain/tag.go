package domain

import "strings"

// Tag is the category label attached to an entry, e.g. "Friend" or "Coworker".
// The value is trimmed; casing is preserved for display but ignored for
// equality and for tag filtering.
type Tag struct {
	value string
}

// NewTag trims raw and rejects blank input.
func NewTag(raw string) (Tag, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Tag{}, newValidationError("tag", ReasonTagRequired)
	}
	return Tag{value: v}, nil
}

// Value returns the trimmed tag text.
func (t Tag) Value() string { return t.value }

// IsZero reports whether t is the zero value.
func (t Tag) IsZero() bool { return t.value == "" }

// Equal compares tags ignoring case.
func (t Tag) Equal(other Tag) bool {
	return strings.EqualFold(t.value, other.value)
}

// Key returns the lower-cased value for use as a map key.
func (t Tag) Key() string { return strings.ToLower(t.value) }

// Matches reports whether raw names this tag, ignoring case.
// raw is compared as given, without trimming.
func (t Tag) Matches(raw string) bool {
	return strings.EqualFold(t.value, raw)
}

// String returns Value.
func (t Tag) String() string { return t.value }
