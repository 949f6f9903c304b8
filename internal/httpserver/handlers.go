package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aware/internal/analyzer"
	"aware/internal/document"
	"aware/internal/ingest"
)

// analyzeRequest is the JSON body of POST /api/analyze. Edit history, fonts,
// styles, and file metadata are supplied pre-extracted by the caller; the
// engine never parses binary document formats itself.
type analyzeRequest struct {
	Text         string              `json:"text"`
	Filename     string              `json:"filename,omitempty"`
	DocumentType string              `json:"document_type,omitempty"`
	OriginalText string              `json:"original_text,omitempty"`
	Edits        []document.Edit     `json:"edits,omitempty"`
	Fonts        *document.FontInfo  `json:"fonts,omitempty"`
	Styles       *document.StyleInfo `json:"styles,omitempty"`
	Meta         *document.FileMeta  `json:"file_meta,omitempty"`
}

// apiError carries a status code up to writeError.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string { return e.message }

func badRequest(format string, args ...any) error {
	return &apiError{status: http.StatusBadRequest, message: fmt.Sprintf(format, args...)}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": analyzer.Version,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) error {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer body.Close()

	var req analyzeRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &apiError{status: http.StatusRequestEntityTooLarge, message: "request body exceeds size limit"}
		}
		return badRequest("invalid JSON body: %v", err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest("text is required")
	}

	docType, err := parseDocType(req.DocumentType)
	if err != nil {
		return err
	}
	res, err := s.analyzer.Analyze(r.Context(), analyzer.Request{
		Text:         req.Text,
		Filename:     req.Filename,
		DocType:      docType,
		OriginalText: req.OriginalText,
		Edits:        req.Edits,
		Fonts:        req.Fonts,
		Styles:       req.Styles,
		Meta:         req.Meta,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, res)
}

// handleUpload accepts multipart form uploads: a required "file" part plus
// optional "original" and "document_type" fields.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxBodyBytes); err != nil {
		return badRequest("invalid multipart form: %v", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return badRequest("file field is required")
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	parsed, err := ingest.Parse(raw, header.Filename)
	if err != nil {
		return badRequest("%v", err)
	}

	docType, err := parseDocType(r.FormValue("document_type"))
	if err != nil {
		return err
	}
	req := analyzer.Request{
		Text:     parsed.Text,
		Filename: parsed.Filename,
		DocType:  docType,
	}

	if orig, origHeader, ferr := r.FormFile("original"); ferr == nil {
		defer orig.Close()
		origRaw, rerr := io.ReadAll(orig)
		if rerr != nil {
			return fmt.Errorf("read original upload: %w", rerr)
		}
		origParsed, perr := ingest.Parse(origRaw, origHeader.Filename)
		if perr != nil {
			return badRequest("original: %v", perr)
		}
		req.OriginalText = origParsed.Text
	}

	res, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, res)
}

func parseDocType(v string) (document.Type, error) {
	switch document.Type(strings.ToLower(strings.TrimSpace(v))) {
	case "":
		return "", nil
	case document.TypeAcademic:
		return document.TypeAcademic, nil
	case document.TypeBusiness:
		return document.TypeBusiness, nil
	case document.TypeGeneral:
		return document.TypeGeneral, nil
	default:
		return "", badRequest("unknown document_type %q", v)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	var apiErr *apiError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.status
		message = apiErr.message
	case errors.Is(err, analyzer.ErrEmptyDocument):
		status = http.StatusBadRequest
		message = err.Error()
	}
	if status >= 500 {
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	_ = writeJSON(w, status, map[string]string{"error": message})
}
