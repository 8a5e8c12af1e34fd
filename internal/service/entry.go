// Package service contains the business logic for the Phone Book API.
// EntryService is the only caller of the domain field constructors and Entry
// mutators; it translates plain input into validated types and orchestrates
// repo calls. No storage code lives here.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/phonebook/internal/domain"
	"github.com/pkordes/phonebook/internal/repo"
)

// EntryView is the plain-data projection of an entry returned to callers.
type EntryView struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateEntryInput carries the raw fields for a new entry.
type CreateEntryInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Tag         string
}

// UpdateEntryInput carries a partial update. A nil or blank field leaves the
// stored value unchanged.
type UpdateEntryInput struct {
	ID          uuid.UUID
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Tag         *string
}

// LifecycleRecorder is notified after each successful state change.
// The metrics package provides the production implementation.
type LifecycleRecorder interface {
	EntryCreated()
	EntryUpdated()
	EntryDeleted()
}

// EntryService implements the phone book use cases.
// It holds no entry state: every call re-fetches from the repo.
type EntryService struct {
	entries  repo.EntryRepo
	clock    domain.Clock
	recorder LifecycleRecorder
}

// NewEntryService constructs an EntryService backed by the provided repo.
// A nil clock uses domain.SystemClock; a nil recorder disables recording.
func NewEntryService(entries repo.EntryRepo, clock domain.Clock, recorder LifecycleRecorder) *EntryService {
	if clock == nil {
		clock = domain.SystemClock
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &EntryService{entries: entries, clock: clock, recorder: recorder}
}

// Add validates the input, creates a new entry, and persists it.
// Returns an error wrapping domain.ErrValidation for invalid input; the
// repo is not called in that case.
func (s *EntryService) Add(ctx context.Context, in CreateEntryInput) (EntryView, error) {
	name, err := domain.NewPersonName(in.FirstName, in.LastName)
	if err != nil {
		return EntryView{}, err
	}
	phone, err := domain.NewPhoneNumber(in.PhoneNumber)
	if err != nil {
		return EntryView{}, err
	}
	tag, err := domain.NewTag(in.Tag)
	if err != nil {
		return EntryView{}, err
	}

	entry, err := domain.NewEntry(name, phone, tag, s.clock)
	if err != nil {
		return EntryView{}, err
	}
	if err := s.entries.Add(ctx, entry); err != nil {
		return EntryView{}, fmt.Errorf("service.EntryService.Add: %w", err)
	}

	s.recorder.EntryCreated()
	return toView(entry), nil
}

// Update applies a partial update to an existing entry.
// ok is false, with no error and no store mutation, when the ID is unknown.
//
// If either name part is provided, the name is rebuilt from the provided
// part and the stored value of the other. Phone and tag are replaced
// independently. The entry is persisted once after all changes apply; a
// validation failure on any field leaves the stored entry untouched.
func (s *EntryService) Update(ctx context.Context, in UpdateEntryInput) (EntryView, bool, error) {
	entry, ok, err := s.entries.GetByID(ctx, in.ID)
	if err != nil {
		return EntryView{}, false, fmt.Errorf("service.EntryService.Update: %w", err)
	}
	if !ok {
		return EntryView{}, false, nil
	}
	entry = entry.WithClock(s.clock)

	first, hasFirst := present(in.FirstName)
	last, hasLast := present(in.LastName)
	if hasFirst || hasLast {
		if !hasFirst {
			first = entry.Name().FirstName()
		}
		if !hasLast {
			last = entry.Name().LastName()
		}
		name, err := domain.NewPersonName(first, last)
		if err != nil {
			return EntryView{}, false, err
		}
		if err := entry.Rename(name); err != nil {
			return EntryView{}, false, err
		}
	}

	if raw, ok := present(in.PhoneNumber); ok {
		phone, err := domain.NewPhoneNumber(raw)
		if err != nil {
			return EntryView{}, false, err
		}
		if err := entry.ChangeNumber(phone); err != nil {
			return EntryView{}, false, err
		}
	}

	if raw, ok := present(in.Tag); ok {
		tag, err := domain.NewTag(raw)
		if err != nil {
			return EntryView{}, false, err
		}
		if err := entry.Retag(tag); err != nil {
			return EntryView{}, false, err
		}
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		return EntryView{}, false, fmt.Errorf("service.EntryService.Update: %w", err)
	}

	s.recorder.EntryUpdated()
	return toView(entry), true, nil
}

// Delete removes an entry and reports whether it existed.
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.entries.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("service.EntryService.Delete: %w", err)
	}
	if deleted {
		s.recorder.EntryDeleted()
	}
	return deleted, nil
}

// GetByID returns a single entry. ok is false when the ID is unknown.
func (s *EntryService) GetByID(ctx context.Context, id uuid.UUID) (EntryView, bool, error) {
	entry, ok, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return EntryView{}, false, fmt.Errorf("service.EntryService.GetByID: %w", err)
	}
	if !ok {
		return EntryView{}, false, nil
	}
	return toView(entry), true, nil
}

// List returns every entry ordered by full name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EntryService) List(ctx context.Context) ([]EntryView, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.List: %w", err)
	}
	return toViews(entries), nil
}

// ListByTag returns the entries whose tag matches ignoring case, ordered by
// full name. Always returns a non-nil slice.
func (s *EntryService) ListByTag(ctx context.Context, tag string) ([]EntryView, error) {
	entries, err := s.entries.ListByTag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.ListByTag: %w", err)
	}
	return toViews(entries), nil
}

// present returns the value behind p and whether it counts as provided:
// non-nil and not blank after trimming.
func present(p *string) (string, bool) {
	if p == nil || strings.TrimSpace(*p) == "" {
		return "", false
	}
	return *p, true
}

func toView(e domain.Entry) EntryView {
	return EntryView{
		ID:          e.ID(),
		FirstName:   e.Name().FirstName(),
		LastName:    e.Name().LastName(),
		PhoneNumber: e.Phone().Value(),
		Tag:         e.Tag().Value(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func toViews(entries []domain.Entry) []EntryView {
	out := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, toView(e))
	}
	return out
}

type nopRecorder struct{}

func (nopRecorder) EntryCreated() {}
func (nopRecorder) EntryUpdated() {}
func (nopRecorder) EntryDeleted() {}
