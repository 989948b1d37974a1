package assess

import (
	"encoding/json"
	"os"
)

// ExportJSON serializes an AssessmentResult to indented JSON (§6's schema).
func ExportJSON(result *AssessmentResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// ExportJSONCompact serializes an AssessmentResult without indentation,
// suitable for storage or transmission.
func ExportJSONCompact(result *AssessmentResult) ([]byte, error) {
	return json.Marshal(result)
}

// SaveJSONToFile writes result as indented JSON to filepath.
func SaveJSONToFile(result *AssessmentResult, filepath string) error {
	data, err := ExportJSON(result)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
