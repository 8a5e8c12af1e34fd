package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/phonebook/internal/service"
)

// CreateEntryRequest is the body of POST /api/phonebook.
type CreateEntryRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Tag         string `json:"tag"`
}

// UpdateEntryRequest is the body of PUT /api/phonebook/{id}. Every field is
// optional; an omitted or blank field keeps the stored value. Id, when
// present, must match the path.
type UpdateEntryRequest struct {
	Id          *openapi_types.UUID `json:"id,omitempty"`
	FirstName   *string             `json:"first_name,omitempty"`
	LastName    *string             `json:"last_name,omitempty"`
	PhoneNumber *string             `json:"phone_number,omitempty"`
	Tag         *string             `json:"tag,omitempty"`
}

// CreateEntry handles POST /api/phonebook.
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var body CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := s.entries.Add(r.Context(), service.CreateEntryInput{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		PhoneNumber: body.PhoneNumber,
		Tag:         body.Tag,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", BasePath+"/"+created.ID.String())
	writeJSON(w, http.StatusCreated, created)
}

// ListEntries handles GET /api/phonebook.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.entries.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ListEntriesByTag handles GET /api/phonebook/tag/{tag}.
// An unknown tag yields 200 with an empty list.
func (s *Server) ListEntriesByTag(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	// chi hands back the escaped segment when the path carried an encoded slash.
	if unescaped, err := url.PathUnescape(tag); err == nil {
		tag = unescaped
	}

	entries, err := s.entries.ListByTag(r.Context(), tag)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetEntry handles GET /api/phonebook/{id}.
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	entry, found, err := s.entries.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, notFoundBody("entry not found"))
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// UpdateEntry handles PUT /api/phonebook/{id}.
func (s *Server) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	var body UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDecodeError(w, err)
		return
	}
	if body.Id != nil && *body.Id != id {
		writeJSON(w, http.StatusBadRequest, requestBody("Mismatched id"))
		return
	}

	updated, found, err := s.entries.Update(r.Context(), service.UpdateEntryInput{
		ID:          id,
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		PhoneNumber: body.PhoneNumber,
		Tag:         body.Tag,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, notFoundBody("entry not found"))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteEntry handles DELETE /api/phonebook/{id}.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := bindID(w, r)
	if !ok {
		return
	}

	deleted, err := s.entries.Delete(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, notFoundBody("entry not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bindID parses the {id} path parameter. On failure it writes a 400 and
// returns false.
func bindID(w http.ResponseWriter, r *http.Request) (openapi_types.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("Invalid format for parameter id"))
		return openapi_types.UUID{}, false
	}
	return id, true
}
