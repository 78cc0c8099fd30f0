package report

import (
	"encoding/json"
	"io"
)

// WriteJSON renders the run as indented JSON for downstream tooling.
func (r *Run) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
