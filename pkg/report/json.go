package report

import (
	"encoding/json"
	"io"
)

// JSONReporter writes a lint summary as JSON.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a JSON reporter. When pretty is true,
// output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// Marshal renders the summary to JSON bytes.
func (r *JSONReporter) Marshal(s *Summary) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// WriteSummary writes the JSON summary followed by a newline.
func (r *JSONReporter) WriteSummary(
	w io.Writer,
	s *Summary,
) error {
	data, err := r.Marshal(s)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
