package web

// errors.go maps technical errors to user-facing messages with support
// codes. Technical details are logged server-side with the request ID;
// clients get the friendly message, as HTML (the re-rendered form) or
// JSON depending on what they accept.

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sheetops/sheetdiff/internal/logging"
)

// UserMessage is a user-friendly error with a support code.
type UserMessage struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// errorPattern maps a technical error substring to its user message.
// Patterns match case-insensitively; the first match wins, so specific
// patterns come before general ones.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "both files are required",
		msg:     UserMessage{Message: "Both a left and a right workbook file are required", Code: "FILE001"},
	},
	{
		pattern: "request body too large",
		msg:     UserMessage{Message: "An uploaded file exceeds the size limit", Code: "FILE002"},
	},
	{
		pattern: "file too large",
		msg:     UserMessage{Message: "An uploaded file exceeds the size limit", Code: "FILE002"},
	},
	{
		pattern: "parse workbook",
		msg:     UserMessage{Message: "A file could not be read as a valid workbook", Code: "PARSE001"},
	},
	{
		pattern: "no requested sheets",
		msg:     UserMessage{Message: "None of the requested sheets exist in either workbook", Code: "CMP001"},
	},
}

// MapError converts a technical error into a UserMessage.
func MapError(err error) UserMessage {
	text := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(text, p.pattern) {
			return p.msg
		}
	}
	return UserMessage{Message: "An unexpected error occurred", Code: "ERR000"}
}

// respondError logs the technical error and answers with the mapped
// user message: JSON for API clients, otherwise the form re-rendered
// with the message attached.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, status int, data formData) {
	userMsg := MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(userMsg)
		return
	}

	data.Errors = append(data.Errors, userMsg.Message+" ("+userMsg.Code+")")
	s.renderForm(w, r, status, data)
}

// wantsJSON checks whether the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
