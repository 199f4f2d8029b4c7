package insights

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON serializes the report to w, indented for human inspection.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("insights: encode report: %w", err)
	}
	return nil
}

// Export writes the report to a JSON file at path.
func Export(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("insights: export to %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteJSON(f, r); err != nil {
		return err
	}
	return nil
}
