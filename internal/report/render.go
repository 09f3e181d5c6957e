package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON marshals doc as indented JSON to w, optionally validating it
// against kind's schema first (the `--validate-schema` debug aid).
func WriteJSON(w io.Writer, kind Kind, doc any, validateSchema bool) error {
	if validateSchema {
		if err := Validate(kind, doc); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encoding %q document: %w", kind, err)
	}

	return nil
}
