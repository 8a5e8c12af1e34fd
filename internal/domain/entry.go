// Package domain contains the core types for the Phone Book API: the
// validated field types (PersonName, PhoneNumber, Tag) and the Entry
// aggregate. This package has no dependency on any other internal package.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single phone book record and the aggregate root of the domain.
// ID and CreatedAt are fixed at creation. Name, Phone and Tag change only
// through Rename, ChangeNumber and Retag, each of which refreshes UpdatedAt.
//
// Entry is a value type: copies are independent, and a modified copy has no
// effect on the stored entry until it is passed to EntryRepo.Update.
type Entry struct {
	id        uuid.UUID
	name      PersonName
	phone     PhoneNumber
	tag       Tag
	createdAt time.Time
	updatedAt time.Time
	clock     Clock
}

// NewEntry creates an entry with a fresh ID. Every argument must be a
// constructed (non-zero) value. CreatedAt and UpdatedAt are both set to the
// same clock reading. A nil clock falls back to SystemClock.
func NewEntry(name PersonName, phone PhoneNumber, tag Tag, clock Clock) (Entry, error) {
	if name.IsZero() {
		return Entry{}, newValidationError("name", ReasonNameRequired)
	}
	if phone.IsZero() {
		return Entry{}, newValidationError("phone_number", ReasonPhoneRequired)
	}
	if tag.IsZero() {
		return Entry{}, newValidationError("tag", ReasonTagRequired)
	}
	if clock == nil {
		clock = SystemClock
	}

	now := clock().UTC()
	return Entry{
		id:        uuid.New(),
		name:      name,
		phone:     phone,
		tag:       tag,
		createdAt: now,
		updatedAt: now,
		clock:     clock,
	}, nil
}

// RestoreEntry rebuilds an entry from stored fields. It is intended for
// storage adapters only and skips ID generation; callers are trusted to pass
// values previously produced by NewEntry and the mutators.
func RestoreEntry(id uuid.UUID, name PersonName, phone PhoneNumber, tag Tag, createdAt, updatedAt time.Time) Entry {
	return Entry{
		id:        id,
		name:      name,
		phone:     phone,
		tag:       tag,
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
		clock:     SystemClock,
	}
}

// WithClock returns a copy of e that uses clock for subsequent mutations.
func (e Entry) WithClock(clock Clock) Entry {
	if clock != nil {
		e.clock = clock
	}
	return e
}

func (e Entry) ID() uuid.UUID        { return e.id }
func (e Entry) Name() PersonName     { return e.name }
func (e Entry) Phone() PhoneNumber   { return e.phone }
func (e Entry) Tag() Tag             { return e.tag }
func (e Entry) CreatedAt() time.Time { return e.createdAt }
func (e Entry) UpdatedAt() time.Time { return e.updatedAt }

// Rename replaces the entry's name.
func (e *Entry) Rename(name PersonName) error {
	if name.IsZero() {
		return newValidationError("name", ReasonNameRequired)
	}
	e.name = name
	e.touch()
	return nil
}

// ChangeNumber replaces the entry's phone number.
func (e *Entry) ChangeNumber(phone PhoneNumber) error {
	if phone.IsZero() {
		return newValidationError("phone_number", ReasonPhoneRequired)
	}
	e.phone = phone
	e.touch()
	return nil
}

// Retag replaces the entry's tag.
func (e *Entry) Retag(tag Tag) error {
	if tag.IsZero() {
		return newValidationError("tag", ReasonTagRequired)
	}
	e.tag = tag
	e.touch()
	return nil
}

// touch moves UpdatedAt forward. If the clock has not advanced past the
// previous UpdatedAt (coarse clock, or a wall-clock step backwards), the
// timestamp is bumped by TimestampPrecision so it stays strictly increasing.
func (e *Entry) touch() {
	clock := e.clock
	if clock == nil {
		clock = SystemClock
	}
	now := clock().UTC()
	if !now.After(e.updatedAt) {
		now = e.updatedAt.Add(TimestampPrecision)
	}
	e.updatedAt = now
}
