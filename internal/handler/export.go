package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/phonebook/internal/service"
)

// Export formats accepted by ?format=.
const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "first_name", "last_name", "phone_number", "phone_digits",
	"tag", "created_at", "updated_at",
}

// ExportRow is the JSON shape of one exported entry.
type ExportRow struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	PhoneDigits string    `json:"phone_digits"`
	Tag         string    `json:"tag"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetExport handles GET /api/phonebook/export.
// Use ?format=csv to receive CSV; default is JSON. ?tag= narrows the export
// to one tag.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format, tag *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("Invalid format for parameter format"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "tag", r.URL.Query(), &tag); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("Invalid format for parameter tag"))
		return
	}

	want := formatJSON
	if format != nil {
		want = *format
	}
	if want != formatJSON && want != formatCSV {
		writeJSON(w, http.StatusBadRequest, requestBody("format must be json or csv"))
		return
	}

	filter := ""
	if tag != nil {
		filter = *tag
	}
	rows, err := s.export.Export(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if want == formatCSV {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, toExportRows(rows))
}

// writeCSV encodes rows as CSV with a header line.
func writeCSV(w http.ResponseWriter, rows []service.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(toCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="phonebook.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

func toExportRows(rows []service.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExportRow(r))
	}
	return out
}

// toCSVRecord encodes a row as a flat string slice. Timestamps use RFC 3339
// with microseconds.
func toCSVRecord(r service.ExportRow) []string {
	return []string{
		r.ID,
		r.FirstName,
		r.LastName,
		r.PhoneNumber,
		r.PhoneDigits,
		r.Tag,
		r.CreatedAt.UTC().Format(csvTimeLayout),
		r.UpdatedAt.UTC().Format(csvTimeLayout),
	}
}

const csvTimeLayout = "2006-01-02T15:04:05.000000Z07:00"
