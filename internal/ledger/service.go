package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SourceRef is what the source registry resolves a display name to.
type SourceRef struct {
	ID       uuid.UUID
	Currency string
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	// All returns the records ordered by time. The slice and the records
	// are owned by the store; the engine mutates them in place.
	All() []*Record
	// Get returns the record with the given id.
	Get(id int64) (*Record, bool)
	// AddBulk appends the batches in order, re-sorts by time and assigns
	// fresh ids to records whose id is zero.
	AddBulk(batches ...[]*Record)
	// Resort restores time ordering after a record's time changed.
	Resort()

	Save() error
	Backup() (string, error)
	Reset() (string, error)
}

// SourceResolver resolves a source display name, case-insensitively, to
// its stable id and currency.
type SourceResolver interface {
	Resolve(name string) (SourceRef, error)
}

// Vocabulary owns the canonical category and tag names. Canonical lookups
// register the name if it is new and return the stored spelling.
type Vocabulary interface {
	CanonicalCategory(text string) string
	CanonicalTag(text string) string
	HasCategory(name string) bool
	HasTag(name string) bool
}

// Service is the ledger engine: it evaluates queries over the store and
// applies the mutations that keep the ledger invariants intact. All
// collaborators are injected; the service holds no hidden state.
type Service struct {
	store   Repository
	sources SourceResolver
	vocab   Vocabulary
	home    *time.Location
}

func NewService(store Repository, sources SourceResolver, vocab Vocabulary, home *time.Location) *Service {
	if home == nil {
		home = time.Local
	}

	return &Service{store: store, sources: sources, vocab: vocab, home: home}
}

// Get returns a copy of the record with the given id.
func (s *Service) Get(id int64) (*Record, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return nil, errf(KindNotFound, "id %d", id)
	}

	return r.Clone(), nil
}

// Len returns the number of records in the ledger.
func (s *Service) Len() int {
	return len(s.store.All())
}

type AddParams struct {
	Time     time.Time
	Timezone string // IANA zone the time was entered in; empty means home
	Type     string
	Source   string // display name, must be registered
	Desc     string
	Amount   decimal.Decimal
	Fee      decimal.Decimal
	Note     string
	Category string
	Tags     []string
}

// Add appends a single manual entry. The time is interpreted in the given
// timezone and converted to the home timezone; total is computed from
// amount and fee; category and tags are passed through the vocabulary.
func (s *Service) Add(p AddParams) (*Record, error) {
	ref, err := s.sources.Resolve(p.Source)
	if err != nil {
		return nil, err
	}

	t, err := s.localize(p.Time, p.Timezone)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Time:     t,
		Input:    InputManual,
		Type:     p.Type,
		Source:   p.Source,
		SourceID: ref.ID,
		Desc:     p.Desc,
		Amount:   p.Amount,
		Fee:      p.Fee,
		Total:    p.Amount.Add(p.Fee),
		Curr:     ref.Currency,
		Note:     p.Note,
	}

	if p.Category != "" {
		rec.Category = s.vocab.CanonicalCategory(p.Category)
	}

	rec.Tags = s.canonicalTags(p.Tags)

	s.store.AddBulk([]*Record{rec})

	return rec.Clone(), nil
}

// AddBulk merges normalized import batches into the ledger. Records arrive
// without ids; the store assigns them after the merge re-sorts by time.
// Totals are recomputed so the conservation invariant cannot be broken by
// a sloppy normalizer.
func (s *Service) AddBulk(batches ...[]*Record) {
	for _, batch := range batches {
		for _, r := range batch {
			r.Total = r.Amount.Add(r.Fee)
		}
	}

	s.store.AddBulk(batches...)
}

// Save persists the ledger table, overwriting the canonical file.
func (s *Service) Save() error {
	return s.store.Save()
}

// Backup writes a timestamped snapshot alongside the canonical file and
// returns its path.
func (s *Service) Backup() (string, error) {
	return s.store.Backup()
}

// Reset backs the ledger up and replaces it with an empty table.
func (s *Service) Reset() (string, error) {
	return s.store.Reset()
}

// localize interprets the wall-clock reading of t in the named zone and
// converts it to naive home time.
func (s *Service) localize(t time.Time, zone string) (time.Time, error) {
	loc := s.home

	if zone != "" {
		var err error

		loc, err = time.LoadLocation(zone)
		if err != nil {
			return time.Time{}, fmt.Errorf("loading timezone %q: %w", zone, err)
		}
	}

	in := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	at := in.In(s.home)

	// Strip the zone: ledger times are naive home-local.
	return time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute(), at.Second(), 0, time.UTC), nil
}

// canonicalTags normalizes each tag through the vocabulary and drops
// duplicates while keeping insertion order.
func (s *Service) canonicalTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	var out []string

	seen := make(map[string]struct{}, len(tags))

	for _, t := range tags {
		name := s.vocab.CanonicalTag(t)
		if name == "" {
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}
