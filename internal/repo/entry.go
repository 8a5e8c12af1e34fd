// Package repo contains the storage adapters for phone book entries.
// EntryRepo is the abstraction the service depends on; this file holds the
// Postgres implementation and memory.go the in-memory one.
// No validation lives here: adapters only store and retrieve.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/phonebook/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EntryRepo defines the persistence operations for phone book entries.
// The service layer depends on this interface, not on a concrete backend.
//
// List and ListByTag order entries ascending by "FirstName LastName" using
// byte-wise string comparison. Consumers may rely on this order.
type EntryRepo interface {
	// Add inserts a new entry. Returns domain.ErrConflict if an entry with
	// the same ID is already stored.
	Add(ctx context.Context, entry domain.Entry) error

	// Update stores entry under its ID, overwriting whatever is there.
	Update(ctx context.Context, entry domain.Entry) error

	// Delete removes the entry with the given ID and reports whether one existed.
	// Deleting a missing ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// GetByID returns the entry with the given ID. ok is false if absent.
	GetByID(ctx context.Context, id uuid.UUID) (entry domain.Entry, ok bool, err error)

	// List returns every entry ordered by full name.
	List(ctx context.Context) ([]domain.Entry, error)

	// ListByTag returns the entries whose tag equals tag ignoring case,
	// ordered by full name.
	ListByTag(ctx context.Context, tag string) ([]domain.Entry, error)
}

// pgEntryRepo is the Postgres implementation of EntryRepo.
type pgEntryRepo struct {
	db db
}

// NewEntryRepo constructs an EntryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEntryRepo(db db) EntryRepo {
	return &pgEntryRepo{db: db}
}

const entryColumns = `id, first_name, last_name, phone_number, tag, created_at, updated_at`

// orderByFullName sorts with the "C" collation so the database agrees with
// the byte-wise ordering of the in-memory store.
const orderByFullName = `ORDER BY (first_name || ' ' || last_name) COLLATE "C", id`

// Add inserts a row. A primary key violation is reported as domain.ErrConflict.
func (r *pgEntryRepo) Add(ctx context.Context, entry domain.Entry) error {
	const q = `
		INSERT INTO entries (` + entryColumns + `)
		VALUES (@id, @first_name, @last_name, @phone_number, @tag, @created_at, @updated_at)`

	if _, err := r.db.Exec(ctx, q, entryArgs(entry)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("repo.EntryRepo.Add: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.EntryRepo.Add: %w", err)
	}
	return nil
}

// Update upserts by ID. created_at is only written on insert so an upsert of
// an existing row cannot move it.
func (r *pgEntryRepo) Update(ctx context.Context, entry domain.Entry) error {
	const q = `
		INSERT INTO entries (` + entryColumns + `)
		VALUES (@id, @first_name, @last_name, @phone_number, @tag, @created_at, @updated_at)
		ON CONFLICT (id) DO UPDATE
		SET first_name   = EXCLUDED.first_name,
		    last_name    = EXCLUDED.last_name,
		    phone_number = EXCLUDED.phone_number,
		    tag          = EXCLUDED.tag,
		    updated_at   = EXCLUDED.updated_at`

	if _, err := r.db.Exec(ctx, q, entryArgs(entry)); err != nil {
		return fmt.Errorf("repo.EntryRepo.Update: %w", err)
	}
	return nil
}

// Delete removes a row by primary key.
func (r *pgEntryRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM entries WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.EntryRepo.Delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID retrieves an entry by primary key.
func (r *pgEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Entry, bool, error) {
	const q = `SELECT ` + entryColumns + ` FROM entries WHERE id = @id`

	entry, err := scanEntry(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Entry{}, false, nil
	}
	if err != nil {
		return domain.Entry{}, false, fmt.Errorf("repo.EntryRepo.GetByID: %w", err)
	}
	return entry, true, nil
}

// List returns all entries ordered by full name.
func (r *pgEntryRepo) List(ctx context.Context) ([]domain.Entry, error) {
	const q = `SELECT ` + entryColumns + ` FROM entries ` + orderByFullName

	entries, err := r.query(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.List: %w", err)
	}
	return entries, nil
}

// ListByTag returns entries whose tag matches ignoring case.
func (r *pgEntryRepo) ListByTag(ctx context.Context, tag string) ([]domain.Entry, error) {
	const q = `SELECT ` + entryColumns + ` FROM entries WHERE lower(tag) = lower(@tag) ` + orderByFullName

	entries, err := r.query(ctx, q, pgx.NamedArgs{"tag": tag})
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.ListByTag: %w", err)
	}
	return entries, nil
}

func (r *pgEntryRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Entry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return entries, nil
}

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

func entryArgs(e domain.Entry) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":           e.ID(),
		"first_name":   e.Name().FirstName(),
		"last_name":    e.Name().LastName(),
		"phone_number": e.Phone().Value(),
		"tag":          e.Tag().Value(),
		"created_at":   e.CreatedAt(),
		"updated_at":   e.UpdatedAt(),
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanEntry to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry maps a single database row into a domain.Entry.
// Stored values are re-run through the field constructors; a row that no
// longer validates (e.g. edited by hand) is reported as an error rather than
// handed to the service half-valid. The validation error is flattened so it
// surfaces as a server fault, not a client one.
func scanEntry(s scanner) (domain.Entry, error) {
	var (
		id                   pgtype.UUID
		first, last          string
		phoneRaw, tagRaw     string
		createdAt, updatedAt time.Time
	)
	err := s.Scan(&id, &first, &last, &phoneRaw, &tagRaw, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Entry{}, domain.ErrNotFound
		}
		return domain.Entry{}, err
	}

	name, err := domain.NewPersonName(first, last)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("stored name: %v", err)
	}
	phone, err := domain.NewPhoneNumber(phoneRaw)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("stored phone number: %v", err)
	}
	tag, err := domain.NewTag(tagRaw)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("stored tag: %v", err)
	}

	return domain.RestoreEntry(uuid.UUID(id.Bytes), name, phone, tag, createdAt, updatedAt), nil
}
