// Package vocab owns the canonical vocabulary of category and tag names.
// The registry is a hand-editable YAML file; lookups are case-insensitive
// and register new names on first use.
package vocab

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmcorreia/kasa/internal/ledger"
)

var _ ledger.Vocabulary = (*Registry)(nil)

type Registry struct {
	path       string
	categories []string
	tags       []string
	catIndex   map[string]int
	tagIndex   map[string]int
}

func NewRegistry(path string) *Registry {
	return &Registry{
		path:     path,
		catIndex: map[string]int{},
		tagIndex: map[string]int{},
	}
}

type registryFile struct {
	Categories []string `yaml:"categories"`
	Tags       []string `yaml:"tags"`
}

// Load reads the vocabulary file. A missing file leaves the registry
// empty.
func (r *Registry) Load() error {
	r.categories, r.tags = nil, nil
	r.catIndex = map[string]int{}
	r.tagIndex = map[string]int{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading vocabulary file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing vocabulary file: %w", err)
	}

	for _, c := range file.Categories {
		r.CanonicalCategory(c)
	}

	for _, t := range file.Tags {
		r.CanonicalTag(t)
	}

	return nil
}

func (r *Registry) Save() error {
	data, err := yaml.Marshal(registryFile{Categories: r.categories, Tags: r.tags})
	if err != nil {
		return fmt.Errorf("encoding vocabulary: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing vocabulary file: %w", err)
	}

	return nil
}

// CanonicalCategory returns the stored spelling of the category matching
// the text case-insensitively, registering the trimmed text as a new
// category if no match exists. Empty text stays empty.
func (r *Registry) CanonicalCategory(text string) string {
	return canonical(text, &r.categories, r.catIndex)
}

// CanonicalTag is CanonicalCategory for tag names.
func (r *Registry) CanonicalTag(text string) string {
	return canonical(text, &r.tags, r.tagIndex)
}

func (r *Registry) HasCategory(name string) bool {
	_, ok := r.catIndex[fold(name)]

	return ok
}

func (r *Registry) HasTag(name string) bool {
	_, ok := r.tagIndex[fold(name)]

	return ok
}

// Categories returns the canonical category names in registration order.
func (r *Registry) Categories() []string {
	return r.categories
}

// Tags returns the canonical tag names in registration order.
func (r *Registry) Tags() []string {
	return r.tags
}

func canonical(text string, names *[]string, index map[string]int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	if i, ok := index[fold(trimmed)]; ok {
		return (*names)[i]
	}

	index[fold(trimmed)] = len(*names)
	*names = append(*names, trimmed)

	return trimmed
}

func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
