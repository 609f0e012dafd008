package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/charset"
	"github.com/go-chi/chi/v5"
)

// handleParse parses one document. A JSON body carries a lawtree.Input;
// any other body is raw markup with title and type in the query string.
// With save=true the result is stored and the record returned.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	in, err := readInput(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := in.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.parser.Parse(in.Content, in.Title, in.DocumentType())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("save") != "true" {
		writeJSON(w, http.StatusOK, result)
		return
	}
	if s.records == nil {
		s.writeError(w, r, lawtree.Errorf(lawtree.ENOTIMPLEMENTED, "record storage is not configured"))
		return
	}

	rec := lawtree.NewRecord(in, result)
	if err := s.records.CreateRecord(r.Context(), rec); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func readInput(r *http.Request) (*lawtree.Input, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)

	if mediaType == "application/json" {
		var in lawtree.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return nil, bodyError(err, "invalid JSON body")
		}
		return &in, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, bodyError(err, "failed to read body")
	}
	content, err := charset.Decode(raw, contentType)
	if err != nil {
		return nil, err
	}
	q := r.URL.Query()
	return &lawtree.Input{
		ID:      q.Get("id"),
		Title:   q.Get("title"),
		Type:    q.Get("type"),
		Content: content,
	}, nil
}

func bodyError(err error, msg string) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return lawtree.Errorf(lawtree.EINVALID, "request body exceeds %d bytes", maxErr.Limit)
	}
	return lawtree.Errorf(lawtree.EINVALID, "%s: %v", msg, err)
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	filter, err := recordFilter(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	recs, err := s.records.FindRecords(r.Context(), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if recs == nil {
		recs = []*lawtree.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": recs})
}

// recordFilter builds a filter from the type, variant, source, hash, limit
// and offset query parameters.
func recordFilter(r *http.Request) (lawtree.RecordFilter, error) {
	q := r.URL.Query()
	var filter lawtree.RecordFilter

	optional := func(name string) *string {
		if v := q.Get(name); v != "" {
			return &v
		}
		return nil
	}
	filter.DocumentType = optional("type")
	filter.Variant = optional("variant")
	filter.SourceID = optional("source")
	filter.ContentHash = optional("hash")

	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, lawtree.Errorf(lawtree.EINVALID, "%s must be a non-negative integer", name)
		}
		*dst = n
	}
	return filter, nil
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.FindRecordByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.records.DeleteRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
