package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type matchKind int

const (
	matchUnset matchKind = iota
	matchAny
	matchNone
	matchExact
	matchOneOf
	matchCount
)

// Match is a tagged predicate over one field of a query. The zero value
// leaves the field unfiltered. It replaces the overloaded
// string/list/sentinel parameters of older iterations of this tool.
type Match struct {
	kind   matchKind
	value  string
	values []string
	count  int
}

// Any matches records where the field is present and non-empty.
func Any() Match { return Match{kind: matchAny} }

// None matches records where the field is unset or empty.
func None() Match { return Match{kind: matchNone} }

// Exact matches a single value. For category and type the match is exact;
// for description, note and tags it is a case-insensitive substring match.
func Exact(value string) Match { return Match{kind: matchExact, value: value} }

// AnyOf matches records where the field contains any of the given values
// as a substring. Every value is validated against the vocabulary.
func AnyOf(values ...string) Match { return Match{kind: matchOneOf, values: values} }

// TagCount matches records carrying exactly n tags. Only meaningful for
// the Tags predicate.
func TagCount(n int) Match { return Match{kind: matchCount, count: n} }

// IsZero reports whether the predicate was left unset.
func (m Match) IsZero() bool { return m.kind == matchUnset }

// Query is a set of optional predicates combined with logical AND.
// Unset predicates are ignored. A completely empty query means "no filter
// requested" and Search returns a nil view for it.
type Query struct {
	// IDs narrows the candidate set to the given record ids before the
	// remaining predicates apply.
	IDs []int64

	// StartDate and EndDate form an inclusive calendar-date range over the
	// record time, format 2006-01-02. EndDate left empty with StartDate set
	// matches that single day.
	StartDate string
	EndDate   string

	Type     Match  // Exact or Any
	Source   string // display name, resolved through the source registry
	Desc     Match  // Exact (substring) or Any
	Note     Match  // Exact (substring), Any or None
	Total    *decimal.Decimal
	Currency string
	Category Match // None, Any, Exact or AnyOf
	Tags     Match // None, Any, Exact, AnyOf or TagCount

	// Link retrieves the records joined under a link group value; Allot
	// retrieves a split family by its root id, the root included. Zero
	// leaves the field unfiltered.
	Link  int64
	Allot int64
}

func (q Query) isZero() bool {
	return len(q.IDs) == 0 &&
		q.StartDate == "" && q.EndDate == "" &&
		q.Type.IsZero() && q.Source == "" &&
		q.Desc.IsZero() && q.Note.IsZero() &&
		q.Total == nil && q.Currency == "" &&
		q.Category.IsZero() && q.Tags.IsZero() &&
		q.Link == 0 && q.Allot == 0
}

// View is a snapshot of the records matching a query at call time. It is
// not kept live against later mutations; re-run the query after mutating
// the store before using the view as a mutation target again.
type View struct {
	records []*Record
}

// Records returns the matched records, ordered by time.
func (v *View) Records() []*Record { return v.records }

// IDs returns the ids of the matched records.
func (v *View) IDs() []int64 {
	ids := make([]int64, len(v.records))
	for i, r := range v.records {
		ids[i] = r.ID
	}

	return ids
}

func (v *View) Len() int { return len(v.records) }

// compiled holds a query with dates parsed and the source resolved, ready
// to evaluate per record.
type compiled struct {
	q     Query
	ids   map[int64]struct{}
	start time.Time
	end   time.Time
	byDay bool
	src   *SourceRef
}

// Search evaluates the query over the store and returns a snapshot view of
// the matching records. A query with no predicate at all returns a nil
// view, distinguishing "no filter requested" from an empty result. The
// store is never mutated.
func (s *Service) Search(q Query) (*View, error) {
	if q.isZero() {
		return nil, nil
	}

	c, err := s.compile(q)
	if err != nil {
		return nil, err
	}

	view := &View{}

	for _, r := range s.store.All() {
		if c.matches(r) {
			view.records = append(view.records, r.Clone())
		}
	}

	return view, nil
}

func (s *Service) compile(q Query) (*compiled, error) {
	c := &compiled{q: q}

	if len(q.IDs) > 0 {
		c.ids = make(map[int64]struct{}, len(q.IDs))
		for _, id := range q.IDs {
			c.ids[id] = struct{}{}
		}
	}

	if q.StartDate != "" || q.EndDate != "" {
		if q.StartDate == "" {
			return nil, errf(KindInvalidQuery, "end_date given without start_date")
		}

		start, err := time.Parse(time.DateOnly, q.StartDate)
		if err != nil {
			return nil, errf(KindInvalidQuery, "malformed start_date %q", q.StartDate)
		}

		c.start = start

		if q.EndDate == "" {
			c.byDay = true
		} else {
			end, err := time.Parse(time.DateOnly, q.EndDate)
			if err != nil {
				return nil, errf(KindInvalidQuery, "malformed end_date %q", q.EndDate)
			}

			c.end = end
		}
	}

	if q.Source != "" {
		ref, err := s.sources.Resolve(q.Source)
		if err != nil {
			return nil, err
		}

		c.src = &ref
	}

	if err := s.validateNames(q.Category, s.vocab.HasCategory, KindUnknownCategory, true); err != nil {
		return nil, err
	}

	// Category names are matched against the stored canonical spelling.
	if q.Category.kind == matchExact {
		c.q.Category.value = s.vocab.CanonicalCategory(q.Category.value)
	}

	// A single tag name is a free substring probe; only explicit tag lists
	// are validated against the vocabulary.
	if err := s.validateNames(q.Tags, s.vocab.HasTag, KindUnknownTag, false); err != nil {
		return nil, err
	}

	return c, nil
}

// validateNames checks the Exact/AnyOf values of a vocabulary-backed
// predicate against the registry. checkExact controls whether the single
// Exact value is validated too.
func (s *Service) validateNames(m Match, has func(string) bool, kind Kind, checkExact bool) error {
	switch m.kind {
	case matchExact:
		if checkExact && !has(m.value) {
			return errf(kind, "%q is not registered", m.value)
		}
	case matchOneOf:
		for _, v := range m.values {
			if !has(v) {
				return errf(kind, "%q is not registered", v)
			}
		}
	}

	return nil
}

func (c *compiled) matches(r *Record) bool {
	if c.ids != nil {
		if _, ok := c.ids[r.ID]; !ok {
			return false
		}
	}

	if !c.matchesDate(r) {
		return false
	}

	if !matchString(c.q.Type, r.Type, false) {
		return false
	}

	if c.src != nil && r.SourceID != c.src.ID {
		return false
	}

	if !matchString(c.q.Desc, r.Desc, true) {
		return false
	}

	if !matchString(c.q.Note, r.Note, true) {
		return false
	}

	if c.q.Total != nil && !r.Total.Equal(*c.q.Total) {
		return false
	}

	if c.q.Currency != "" && r.Curr != c.q.Currency {
		return false
	}

	if c.q.Link != 0 && r.Link != c.q.Link {
		return false
	}

	if c.q.Allot != 0 && r.Allot != c.q.Allot {
		return false
	}

	if !matchCategory(c.q.Category, r.Category) {
		return false
	}

	return matchTags(c.q.Tags, r.Tags)
}

func (c *compiled) matchesDate(r *Record) bool {
	if c.start.IsZero() {
		return true
	}

	day := time.Date(r.Time.Year(), r.Time.Month(), r.Time.Day(), 0, 0, 0, 0, time.UTC)
	if c.byDay {
		return day.Equal(c.start)
	}

	return !day.Before(c.start) && !day.After(c.end)
}

// matchString evaluates a Match against a plain string field. When
// substring is true, Exact means case-insensitive containment.
func matchString(m Match, value string, substring bool) bool {
	switch m.kind {
	case matchUnset:
		return true
	case matchAny:
		return value != ""
	case matchNone:
		return value == ""
	case matchExact:
		if substring {
			return strings.Contains(strings.ToLower(value), strings.ToLower(m.value))
		}

		return value == m.value
	case matchOneOf:
		for _, v := range m.values {
			if strings.Contains(strings.ToLower(value), strings.ToLower(v)) {
				return true
			}
		}

		return false
	}

	return false
}

func matchCategory(m Match, category string) bool {
	switch m.kind {
	case matchUnset:
		return true
	case matchAny:
		return category != ""
	case matchNone:
		return category == ""
	case matchExact:
		return category == m.value
	case matchOneOf:
		for _, v := range m.values {
			if strings.Contains(strings.ToLower(category), strings.ToLower(v)) {
				return true
			}
		}

		return false
	}

	return false
}

func matchTags(m Match, tags []string) bool {
	switch m.kind {
	case matchUnset:
		return true
	case matchAny:
		return len(tags) > 0
	case matchNone:
		return len(tags) == 0
	case matchCount:
		return len(tags) == m.count
	case matchExact:
		return tagsContain(tags, m.value)
	case matchOneOf:
		for _, v := range m.values {
			if tagsContain(tags, v) {
				return true
			}
		}

		return false
	}

	return false
}

func tagsContain(tags []string, probe string) bool {
	probe = strings.ToLower(probe)
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), probe) {
			return true
		}
	}

	return false
}
