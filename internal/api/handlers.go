package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Aleph-Alpha/docindex/internal/document"
	"github.com/Aleph-Alpha/docindex/internal/ingestion"
	"github.com/Aleph-Alpha/docindex/internal/repository"
	"github.com/Aleph-Alpha/docindex/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

type registerMetadataRequest struct {
	OriginalFileName string `json:"originalFileName"`
}

// handleUpload accepts a multipart upload under the "file" field and runs the
// full ingestion pipeline. On success it returns 201 with the created record
// and a Location header pointing at the read-by-id endpoint.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "reading upload failed")
		return
	}

	meta, err := s.pipeline.Ingest(r.Context(), header.Filename, content)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	w.Header().Set("Location", "/api/documents/"+meta.ID.String())
	s.writeJSON(w, http.StatusCreated, meta)
}

// handleRegisterMetadata creates a metadata record without a binary upload.
func (s *Server) handleRegisterMetadata(w http.ResponseWriter, r *http.Request) {
	var req registerMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	meta, err := s.pipeline.RegisterMetadataOnly(r.Context(), req.OriginalFileName)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	w.Header().Set("Location", "/api/documents/"+meta.ID.String())
	s.writeJSON(w, http.StatusCreated, meta)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	meta, err := s.pipeline.GetDocument(r.Context(), id)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, meta)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.pipeline.Search(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		s.writeMappedError(w, err)
		return
	}
	if results == nil {
		results = []document.SearchDocument{}
	}

	s.writeJSON(w, http.StatusOK, results)
}

// handleExtractInvoice derives invoice fields from a stored document.
// Absence of fields is a successful outcome reported as 204.
func (s *Server) handleExtractInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	fields, err := s.pipeline.ExtractInvoice(r.Context(), id)
	if err != nil {
		if errors.Is(err, ingestion.ErrNoStoredContent) {
			s.writeError(w, http.StatusConflict, "document has no stored content")
			return
		}
		s.writeMappedError(w, err)
		return
	}
	if fields == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.writeJSON(w, http.StatusOK, fields)
}

// writeMappedError translates pipeline error kinds into status codes:
// validation errors are client mistakes, permission errors map to forbidden,
// unknown ids to not found, and everything else is a server failure whose
// detail stays in the logs.
func (s *Server) writeMappedError(w http.ResponseWriter, err error) {
	switch {
	case ingestion.IsValidation(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case storage.IsPermission(err):
		s.writeError(w, http.StatusForbidden, "storage permission denied")
	case repository.IsNotFound(err):
		s.writeError(w, http.StatusNotFound, "document not found")
	default:
		s.logger.Error("Request failed", err, nil)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Encoding response failed", err, nil)
	}
}
