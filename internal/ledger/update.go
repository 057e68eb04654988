package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateParams describes an in-place update. Exactly one of IDs or View
// selects the targets. Nil field pointers leave the column untouched; a
// pointer to the zero value clears it. Tags are replaced unless MergeTags
// is set, in which case new tags are appended in order.
type UpdateParams struct {
	IDs  []int64
	View *View

	Time      *time.Time
	Timezone  string // interpreted with Time; empty means home
	Type      *string
	Source    *string
	Desc      *string
	Amount    *decimal.Decimal
	Fee       *decimal.Decimal
	Note      *string
	Category  *string
	Tags      []string
	MergeTags bool
}

// Update overwrites the provided fields on every targeted record, marks
// them as updated, and recomputes totals when amount or fee changed. All
// validation happens before the first write, so a failed update leaves the
// ledger untouched.
func (s *Service) Update(p UpdateParams) ([]*Record, error) {
	ids, err := s.updateTargets(p)
	if err != nil {
		return nil, err
	}

	targets := make([]*Record, 0, len(ids))

	for _, id := range ids {
		r, ok := s.store.Get(id)
		if !ok {
			return nil, errf(KindNotFound, "id %d", id)
		}

		targets = append(targets, r)
	}

	var src *SourceRef

	if p.Source != nil {
		ref, err := s.sources.Resolve(*p.Source)
		if err != nil {
			return nil, err
		}

		src = &ref
	}

	var at time.Time

	if p.Time != nil {
		at, err = s.localize(*p.Time, p.Timezone)
		if err != nil {
			return nil, err
		}
	}

	var category string

	if p.Category != nil && *p.Category != "" {
		category = s.vocab.CanonicalCategory(*p.Category)
	}

	tags := s.canonicalTags(p.Tags)

	for _, r := range targets {
		s.applyUpdate(r, p, src, at, category, tags)
	}

	if p.Time != nil {
		s.store.Resort()
	}

	out := make([]*Record, len(targets))
	for i, r := range targets {
		out[i] = r.Clone()
	}

	return out, nil
}

// updateTargets enforces that exactly one of explicit ids or a prior
// search view selects the records to update.
func (s *Service) updateTargets(p UpdateParams) ([]int64, error) {
	switch {
	case len(p.IDs) > 0 && p.View != nil:
		return nil, errf(KindAmbiguousTarget, "both ids and a view were given")
	case len(p.IDs) > 0:
		return p.IDs, nil
	case p.View != nil:
		return p.View.IDs(), nil
	default:
		return nil, errf(KindAmbiguousTarget, "neither ids nor a view were given")
	}
}

func (s *Service) applyUpdate(r *Record, p UpdateParams, src *SourceRef, at time.Time, category string, tags []string) {
	if p.Time != nil {
		r.Time = at
	}

	if p.Type != nil {
		r.Type = *p.Type
	}

	if src != nil {
		r.Source = *p.Source
		r.SourceID = src.ID
		r.Curr = src.Currency
	}

	if p.Desc != nil {
		r.Desc = *p.Desc
	}

	if p.Amount != nil {
		r.Amount = *p.Amount
	}

	if p.Fee != nil {
		r.Fee = *p.Fee
	}

	if p.Amount != nil || p.Fee != nil {
		r.Total = r.Amount.Add(r.Fee)
	}

	if p.Note != nil {
		r.Note = *p.Note
	}

	if p.Category != nil {
		r.Category = category
	}

	if p.Tags != nil {
		if p.MergeTags {
			r.Tags = mergeTags(r.Tags, tags)
		} else {
			r.Tags = tags
		}
	}

	r.Input = InputUpdated
}

// mergeTags appends the tags not already present, preserving the existing
// order.
func mergeTags(existing, incoming []string) []string {
	out := existing

	for _, t := range incoming {
		found := false

		for _, e := range existing {
			if e == t {
				found = true
				break
			}
		}

		if !found {
			out = append(out, t)
		}
	}

	return out
}
