package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/phonebook/internal/domain"
)

// Error codes carried in ErrorResponse.
const (
	codeValidation = "validation_error"
	codeNotFound   = "not_found"
	codeBadRequest = "bad_request"
	codeInternal   = "internal_error"
)

// ErrorDetail is the body of every non-2xx JSON response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse wraps ErrorDetail under an "error" key.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// notFoundBody returns an ErrorResponse for a missing resource.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: codeNotFound, Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The reason and field come from the *domain.ValidationError in the chain.
func validationBody(err error) ErrorResponse {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ErrorResponse{Error: ErrorDetail{Code: codeValidation, Message: ve.Reason, Field: ve.Field}}
	}
	return ErrorResponse{Error: ErrorDetail{Code: codeValidation, Message: err.Error()}}
}

// requestBody returns an ErrorResponse for a request rejected before reaching
// the service layer (malformed body, bad path parameter, id mismatch).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: codeBadRequest, Message: message}}
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client may have gone away; nothing useful to do.
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps a service error to a response. Validation failures
// become 400; anything else, including a store conflict, is logged and
// reported as a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeJSON(w, http.StatusBadRequest, validationBody(err))
		return
	}
	s.log.ErrorContext(r.Context(), "unexpected service error",
		"error", err,
		"conflict", errors.Is(err, domain.ErrConflict),
		"method", r.Method,
		"path", r.URL.Path,
	)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
		Code:    codeInternal,
		Message: http.StatusText(http.StatusInternalServerError),
	}})
}

// writeDecodeError reports a body that could not be decoded. Bodies cut off
// by the size limit get 413, everything else 400.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		return
	}
	writeJSON(w, http.StatusBadRequest, requestBody("malformed request body"))
}
