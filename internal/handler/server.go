// Package handler implements the HTTP handlers for the Phone Book API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, entry.go, export.go) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/phonebook/internal/service"
)

// BasePath is the prefix under which all entry routes are mounted.
const BasePath = "/api/phonebook"

// EntryServicer defines the business operations the entry handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the store or service layer.
type EntryServicer interface {
	Add(ctx context.Context, in service.CreateEntryInput) (service.EntryView, error)
	Update(ctx context.Context, in service.UpdateEntryInput) (service.EntryView, bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (service.EntryView, bool, error)
	List(ctx context.Context) ([]service.EntryView, error)
	ListByTag(ctx context.Context, tag string) ([]service.EntryView, error)
}

// ExportServicer defines the operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, tag string) ([]service.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	entries EntryServicer
	export  ExportServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(entries EntryServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{entries: entries, export: export, log: log}
}

// Register mounts every API route on r. Middleware is the caller's concern:
// apply it to r before calling Register.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route(BasePath, func(r chi.Router) {
		r.Get("/", s.ListEntries)
		r.Post("/", s.CreateEntry)
		r.Get("/export", s.GetExport)
		r.Get("/tag/{tag}", s.ListEntriesByTag)
		r.Get("/{id}", s.GetEntry)
		r.Put("/{id}", s.UpdateEntry)
		r.Delete("/{id}", s.DeleteEntry)
	})
}

// Routes returns a fresh chi router with every API route registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	s.Register(r)
	return r
}
