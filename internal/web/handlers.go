package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sheetops/sheetdiff/internal/diff"
	"github.com/sheetops/sheetdiff/internal/history"
	"github.com/sheetops/sheetdiff/internal/logging"
	"github.com/sheetops/sheetdiff/internal/xlsx"
)

// errBothFilesRequired rejects requests missing one or both workbook
// files; no partial comparison is attempted.
var errBothFilesRequired = errors.New("both files are required")

// handleForm renders the upload form.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, http.StatusOK, formData{})
}

// handleCompare runs a full comparison: parse both uploaded workbooks,
// diff them, and stream back the differences workbook as a download.
// Each request is an independent computation; nothing is shared across
// requests beyond the optional history insert.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	// Two workbooks plus some slack for the multipart framing.
	maxBody := 2*s.cfg.Upload.MaxFileSize + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.respondError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest, formData{})
		return
	}

	data := formData{
		Sheets:     r.FormValue("sheets"),
		Tolerance:  r.FormValue("tolerance"),
		IgnoreCase: r.FormValue("ignore_case") != "",
	}

	leftFile, leftHeader, err := r.FormFile("left")
	if err != nil {
		s.respondError(w, r, errBothFilesRequired, http.StatusBadRequest, data)
		return
	}
	defer leftFile.Close()

	rightFile, rightHeader, err := r.FormFile("right")
	if err != nil {
		s.respondError(w, r, errBothFilesRequired, http.StatusBadRequest, data)
		return
	}
	defer rightFile.Close()

	if leftHeader.Size > s.cfg.Upload.MaxFileSize || rightHeader.Size > s.cfg.Upload.MaxFileSize {
		s.respondError(w, r, fmt.Errorf("file too large: limit is %d bytes", s.cfg.Upload.MaxFileSize),
			http.StatusBadRequest, data)
		return
	}

	opts, warnings := parseOptions(r)
	data.Warnings = warnings
	for _, msg := range warnings {
		logger.Warn("comparison option ignored", "warning", msg)
	}

	leftWB, err := xlsx.ParseWorkbook(leftFile)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, data)
		return
	}
	rightWB, err := xlsx.ParseWorkbook(rightFile)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, data)
		return
	}

	start := time.Now()
	report, err := diff.Compare(leftWB, rightWB, opts)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, data)
		return
	}

	out, err := xlsx.RenderReport(report)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError, data)
		return
	}
	elapsed := time.Since(start)

	logger.Info("comparison complete",
		"left", leftHeader.Filename,
		"right", rightHeader.Filename,
		"sheets", len(report.Summaries),
		"diffs", report.DiffCount(),
		"duration_ms", elapsed.Milliseconds(),
	)

	if s.store != nil {
		_, err := s.store.Record(r.Context(), history.Entry{
			LeftFile:   leftHeader.Filename,
			RightFile:  rightHeader.Filename,
			SheetCount: len(report.Summaries),
			DiffCount:  report.DiffCount(),
			DurationMS: elapsed.Milliseconds(),
			ClientIP:   r.RemoteAddr,
		})
		if err != nil {
			// History is best effort; the comparison result still ships.
			logger.Warn("record comparison history", "error", err)
		}
	}

	for _, msg := range warnings {
		w.Header().Add("X-Comparison-Warning", msg)
	}
	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", xlsx.FileName))
	w.Write(out)
}

// handleHistory returns recent comparison history entries as JSON.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(UserMessage{Message: "Comparison history is not configured", Code: "HIST001"})
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError, formData{})
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		logging.FromContext(r.Context()).Error("encode history", "error", err)
	}
}

// handleHealth is a liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
