package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/phonebook/internal/domain"
	"github.com/pkordes/phonebook/internal/repo"
)

// ExportRow is a single row in the flat entry export. PhoneDigits is the
// digits-only projection, handy for spreadsheet matching and dialers.
type ExportRow struct {
	ID          string
	FirstName   string
	LastName    string
	PhoneNumber string
	PhoneDigits string
	Tag         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExportService assembles a flat export of the phone book.
type ExportService struct {
	entries repo.EntryRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(entries repo.EntryRepo) *ExportService {
	return &ExportService{entries: entries}
}

// Export returns one row per entry in full-name order. A non-empty tag
// restricts the export to entries with that tag, matched ignoring case.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context, tag string) ([]ExportRow, error) {
	var (
		entries []domain.Entry
		err     error
	)
	if tag == "" {
		entries, err = s.entries.List(ctx)
	} else {
		entries, err = s.entries.ListByTag(ctx, tag)
	}
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]ExportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ExportRow{
			ID:          e.ID().String(),
			FirstName:   e.Name().FirstName(),
			LastName:    e.Name().LastName(),
			PhoneNumber: e.Phone().Value(),
			PhoneDigits: e.Phone().Digits(),
			Tag:         e.Tag().Value(),
			CreatedAt:   e.CreatedAt(),
			UpdatedAt:   e.UpdatedAt(),
		})
	}
	return rows, nil
}
