package ledger

import "github.com/shopspring/decimal"

// SplitParams describes carving a portion out of an existing record.
// Category nil inherits the original's category, a pointer to "" clears
// it; Tags nil inherits, an empty non-nil slice clears.
type SplitParams struct {
	ID       int64
	Amount   decimal.Decimal
	Fee      decimal.Decimal
	Note     string
	Category *string
	Tags     []string
}

// Split moves a portion of a record's amount and fee into a new standalone
// record and reduces the original by exactly that portion. The original
// becomes the root of the split chain: its allot is set to its own id, and
// every piece carries the root's id in allot. The sum of the reduced
// original and all pieces always equals the pre-split values.
//
// All preconditions are checked before the first write; a failed split
// leaves the ledger untouched.
func (s *Service) Split(p SplitParams) (*Record, error) {
	if p.Amount.IsZero() && p.Fee.IsZero() {
		return nil, errf(KindNothingToSplit, "id %d: both amount and fee portions are zero", p.ID)
	}

	orig, ok := s.store.Get(p.ID)
	if !ok {
		return nil, errf(KindNotFound, "id %d", p.ID)
	}

	// The record's current total decides the direction; the caller's signs
	// are normalized to it. Expense portions are non-positive, income
	// portions non-negative.
	amount, fee := p.Amount.Abs(), p.Fee.Abs()
	if orig.Total.IsNegative() {
		amount, fee = amount.Neg(), fee.Neg()
	}

	portion := amount.Add(fee)
	if portion.Abs().GreaterThan(orig.Total.Abs()) {
		return nil, errf(KindSplitExceedsTotal, "portion %s exceeds total %s", portion, orig.Total)
	}

	if amount.Abs().GreaterThan(orig.Amount.Abs()) {
		return nil, errf(KindSplitExceedsField, "amount portion %s exceeds amount %s", amount, orig.Amount)
	}

	if fee.Abs().GreaterThan(orig.Fee.Abs()) {
		return nil, errf(KindSplitExceedsField, "fee portion %s exceeds fee %s", fee, orig.Fee)
	}

	if orig.SplitPiece() {
		return nil, errf(KindAlreadySplitPiece, "id %d is a piece of record %d; split the original instead", orig.ID, orig.Allot)
	}

	piece := &Record{
		Time:     orig.Time,
		Input:    orig.Input,
		Type:     orig.Type,
		Source:   orig.Source,
		SourceID: orig.SourceID,
		Desc:     orig.Desc,
		Amount:   amount,
		Fee:      fee,
		Total:    portion,
		Curr:     orig.Curr,
		Note:     p.Note,
		Allot:    orig.ID,
	}

	if p.Category == nil {
		piece.Category = orig.Category
	} else if *p.Category != "" {
		piece.Category = s.vocab.CanonicalCategory(*p.Category)
	}

	if p.Tags == nil {
		piece.Tags = append([]string(nil), orig.Tags...)
	} else {
		piece.Tags = s.canonicalTags(p.Tags)
	}

	orig.Amount = orig.Amount.Sub(amount)
	orig.Fee = orig.Fee.Sub(fee)
	orig.Total = orig.Total.Sub(portion)
	orig.Allot = orig.ID

	s.store.AddBulk([]*Record{piece})

	return piece.Clone(), nil
}
