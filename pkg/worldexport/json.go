package worldexport

import (
	"encoding/json"
	"os"

	"github.com/dshills/logicfill/pkg/layout"
)

// ExportJSON serializes the spoiler document with 2-space indentation.
func ExportJSON(s *layout.Spoiler) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportJSONCompact serializes the spoiler document without indentation.
func ExportJSONCompact(s *layout.Spoiler) ([]byte, error) {
	return json.Marshal(s)
}

// SaveJSONToFile writes the indented spoiler JSON to path with 0644
// permissions.
func SaveJSONToFile(s *layout.Spoiler, path string) error {
	data, err := ExportJSON(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
