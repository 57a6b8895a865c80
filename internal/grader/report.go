package grader

import (
	"encoding/json"
	"grader/pkg/domain"
	"io"
)

// reportIndent matches the four-space layout consumers of the report expect.
const reportIndent = "    "

// WriteReport writes report to w as indented JSON followed by a newline.
func WriteReport(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", reportIndent)

	return enc.Encode(report)
}
