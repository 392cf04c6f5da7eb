package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of an events file.
type ImportSchema struct {
	// Source tags every imported event; re-importing with --replace drops
	// earlier events carrying the same tag.
	Source string        `json:"source"`
	Events []EventImport `json:"events"`
}

// EventImport is one event in the file. Timed events set Start and End
// (RFC 3339, or "YYYY-MM-DD HH:MM" in local time); all-day events set
// AllDay and Date.
type EventImport struct {
	Summary string `json:"summary"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
	AllDay  *bool  `json:"all_day,omitempty"`
	Date    string `json:"date,omitempty"`
}

// LoadImportSchema reads and parses an events JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
