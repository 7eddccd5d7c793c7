package foldio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Read parses the .fold JSON file at path into a Document.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("foldio: reading %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("foldio: parsing %s: %w", path, err)
	}

	return &doc, nil
}

// Write serializes doc as indented JSON to path, creating or truncating
// the file, matching the common convention for human-readable .fold
// output.
func Write(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("foldio: marshaling document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("foldio: writing %s: %w", path, err)
	}

	return nil
}
