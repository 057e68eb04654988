// Package store persists description pattern to category mappings as a
// JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type Mapping struct {
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
}

type Store struct {
	path     string
	mappings []Mapping
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the mappings file. A missing file leaves the store empty.
func (s *Store) Load() error {
	s.mappings = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading mappings file: %w", err)
	}

	if err := json.Unmarshal(data, &s.mappings); err != nil {
		return fmt.Errorf("parsing mappings file: %w", err)
	}

	return nil
}

// FindMatch returns the category of the longest pattern contained in the
// description, case-insensitively. Longer patterns are considered more
// specific, matching how the mappings are learned.
func (s *Store) FindMatch(desc string) (string, error) {
	folded := strings.ToLower(desc)

	var (
		category string
		length   int
	)

	for _, m := range s.mappings {
		if len(m.Pattern) <= length {
			continue
		}

		if strings.Contains(folded, strings.ToLower(m.Pattern)) {
			category = m.Category
			length = len(m.Pattern)
		}
	}

	return category, nil
}

// CreateMapping appends a mapping and persists the file.
func (s *Store) CreateMapping(pattern, category string) error {
	s.mappings = append(s.mappings, Mapping{Pattern: pattern, Category: category})

	data, err := json.MarshalIndent(s.mappings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding mappings: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing mappings file: %w", err)
	}

	return nil
}
