package web

import (
	"html/template"
	"net/http"

	"github.com/sheetops/sheetdiff/internal/logging"
)

// formData carries state for re-rendering the upload form: error and
// warning messages plus the user's previous inputs.
type formData struct {
	Errors     []string
	Warnings   []string
	Sheets     string
	Tolerance  string
	IgnoreCase bool
}

var formTemplate = template.Must(template.New("form").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Workbook Compare</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 2rem; }
    label { display: block; margin: .5rem 0; }
    input[type="file"] { display: block; }
    .info { margin-top: 1rem; color: #444; }
    .error { color: #b00; }
    .warning { color: #960; }
  </style>
</head>
<body>
  <h1>Upload two workbooks to compare</h1>
  <form method="post" action="/" enctype="multipart/form-data">
    <label>Left file: <input type="file" name="left" required></label>
    <label>Right file: <input type="file" name="right" required></label>
    <label>Sheets (comma-separated, optional): <input type="text" name="sheets" value="{{.Sheets}}" placeholder="e.g. Sheet1,Sheet2"></label>
    <label>Ignore case: <input type="checkbox" name="ignore_case"{{if .IgnoreCase}} checked{{end}}></label>
    <label>Numeric tolerance: <input type="text" name="tolerance" value="{{.Tolerance}}"></label>
    <br>
    <input type="submit" value="Compare and Download Differences">
  </form>
  {{if .Errors}}
  <div class="error">
    {{range .Errors}}<div>{{.}}</div>{{end}}
  </div>
  {{end}}
  {{if .Warnings}}
  <div class="warning">
    {{range .Warnings}}<div>{{.}}</div>{{end}}
  </div>
  {{end}}
  <div class="info">
    <p>Output: a workbook containing a <strong>differences</strong> sheet and a <strong>summary</strong> sheet.</p>
    <p>For large files, consider running the CLI comparison instead.</p>
  </div>
</body>
</html>
`))

// renderForm writes the upload form with the given status code.
func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, status int, data formData) {
	if data.Tolerance == "" {
		data.Tolerance = "0.0"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := formTemplate.Execute(w, data); err != nil {
		logging.FromContext(r.Context()).Error("render form", "error", err)
	}
}
