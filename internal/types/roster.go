package types

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadRoster reads a JSON array of members from path. This is the file-based
// input path for CLI runs; server runs load the roster from the database.
func LoadRoster(path string) ([]Member, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	var members []Member
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
	}
	return members, nil
}

// LoadCatalog reads a JSON array of projects from path.
func LoadCatalog(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project catalog %s: %w", path, err)
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse project catalog JSON: %w", err)
	}
	return projects, nil
}
