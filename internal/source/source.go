// Package source is the registry of the accounts transactions originate
// from: banks, cards, wallets. Each source carries the currency and
// timezone of its statements and the column mappings that drive statement
// normalization.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/dmcorreia/kasa/internal/ledger"
)

var _ ledger.SourceResolver = (*Registry)(nil)

// ColumnMapping routes one or more raw statement columns into a ledger
// field. With several From columns the first non-empty cell wins, except
// for amount, where a Debits/Credits pair is combined into one signed
// value.
type ColumnMapping struct {
	From []string `json:"from"`
	To   string   `json:"to"`
}

// Source is one registered account.
type Source struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Timezone string          `json:"timezone"`
	Columns  []ColumnMapping `json:"columns,omitempty"`
}

// MapColumn registers a statement column mapping on the source.
func (s *Source) MapColumn(from []string, to string) {
	s.Columns = append(s.Columns, ColumnMapping{From: from, To: to})
}

// Registry is the JSON-persisted collection of sources, addressable
// case-insensitively by display name.
type Registry struct {
	path    string
	sources []*Source
	byName  map[string]*Source
}

func NewRegistry(path string) *Registry {
	return &Registry{path: path, byName: map[string]*Source{}}
}

type registryFile struct {
	Sources []*Source `json:"sources"`
}

// Load reads the registry file. A missing file leaves the registry empty.
func (r *Registry) Load() error {
	r.sources = nil
	r.byName = map[string]*Source{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading sources file: %w", err)
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing sources file: %w", err)
	}

	for _, src := range file.Sources {
		if err := r.Add(src); err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) Save() error {
	data, err := json.MarshalIndent(registryFile{Sources: r.sources}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sources: %w", err)
	}

	if err := os.WriteFile(r.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing sources file: %w", err)
	}

	return nil
}

// Add registers a source, assigning an id if it has none. Display names
// must be unique case-insensitively.
func (r *Registry) Add(src *Source) error {
	key := fold(src.Name)
	if key == "" {
		return fmt.Errorf("source name is empty")
	}

	if _, dup := r.byName[key]; dup {
		return fmt.Errorf("source %q is already registered", src.Name)
	}

	if src.ID == uuid.Nil {
		src.ID = uuid.New()
	}

	r.sources = append(r.sources, src)
	r.byName[key] = src

	return nil
}

// Get returns the source with the given display name, case-insensitively.
func (r *Registry) Get(name string) (*Source, bool) {
	src, ok := r.byName[fold(name)]

	return src, ok
}

// All returns the registered sources in registration order.
func (r *Registry) All() []*Source {
	return r.sources
}

// Resolve implements ledger.SourceResolver.
func (r *Registry) Resolve(name string) (ledger.SourceRef, error) {
	src, ok := r.Get(name)
	if !ok {
		return ledger.SourceRef{}, &ledger.Error{
			Kind:    ledger.KindUnknownSource,
			Message: ledger.ErrUnknownSource.Message,
			Detail:  fmt.Sprintf("%q is not registered", name),
		}
	}

	return ledger.SourceRef{ID: src.ID, Currency: src.Currency}, nil
}

func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
