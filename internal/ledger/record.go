package ledger

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input marks how a record entered the ledger.
type Input string

const (
	InputImported Input = "imported"
	InputManual   Input = "manual"
	InputUpdated  Input = "updated"
)

// Record is one row of the ledger.
//
// Time is naive local time: statement times are converted to the home
// timezone before they reach the ledger, and the zone is not persisted.
// Allot and Link reference other record ids; zero means unset. Total must
// equal Amount plus Fee at all times.
type Record struct {
	ID       int64
	Time     time.Time
	Input    Input
	Type     string
	Source   string
	SourceID uuid.UUID
	Desc     string
	Amount   decimal.Decimal
	Fee      decimal.Decimal
	Total    decimal.Decimal
	Curr     string
	Note     string
	Allot    int64
	Link     int64
	Category string
	Tags     []string
}

// Header returns the canonical column list of the persisted ledger table.
// The header row of the on-disk file must equal this list exactly.
func Header() []string {
	return []string{
		"id", "time", "input", "type", "source", "source_id", "desc",
		"amount", "fee", "total", "curr", "note", "allot", "link",
		"category", "tags",
	}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	c.Tags = slices.Clone(r.Tags)

	return &c
}

// HasTag reports whether the record carries the given tag (exact match).
func (r *Record) HasTag(name string) bool {
	return slices.Contains(r.Tags, name)
}

// SplitPiece reports whether the record is a piece carved out of another
// record, as opposed to a split root or an unsplit record.
func (r *Record) SplitPiece() bool {
	return r.Allot != 0 && r.Allot != r.ID
}
