package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sheetops/sheetdiff/internal/diff"
)

// parseOptions extracts comparison options from the submitted form.
// Malformed options never abort the request: a bad or negative
// tolerance falls back to 0 and is reported as a warning.
func parseOptions(r *http.Request) (diff.Options, []string) {
	var warnings []string

	opts := diff.Options{
		Sheets:     splitSheets(r.FormValue("sheets")),
		IgnoreCase: r.FormValue("ignore_case") != "",
	}

	tolInput := strings.TrimSpace(r.FormValue("tolerance"))
	if tolInput != "" {
		tol, err := strconv.ParseFloat(tolInput, 64)
		switch {
		case err != nil:
			warnings = append(warnings, fmt.Sprintf("invalid tolerance %q; using 0.0", tolInput))
		case tol < 0:
			warnings = append(warnings, fmt.Sprintf("negative tolerance %q; using 0.0", tolInput))
		default:
			opts.Tolerance = tol
		}
	}

	return opts, warnings
}

// splitSheets parses the comma-separated sheet selection, dropping
// empty entries.
func splitSheets(input string) []string {
	var sheets []string
	for _, name := range strings.Split(input, ",") {
		if name = strings.TrimSpace(name); name != "" {
			sheets = append(sheets, name)
		}
	}
	return sheets
}
