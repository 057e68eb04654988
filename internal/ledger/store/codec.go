package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmcorreia/kasa/internal/ledger"
)

// delimiter separates fields in the persisted table. Pipes do not collide
// with the commas of free-text descriptions or the comma-joined tag field.
const delimiter = '|'

const timeLayout = "2006-01-02 15:04:05"

// encodeRecord serializes a record into one row in canonical column order.
// Tags become a comma-joined string only here, at the persistence
// boundary.
func encodeRecord(r *ledger.Record) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Time.Format(timeLayout),
		string(r.Input),
		r.Type,
		r.Source,
		encodeUUID(r.SourceID),
		r.Desc,
		r.Amount.String(),
		r.Fee.String(),
		r.Total.String(),
		r.Curr,
		r.Note,
		encodeRef(r.Allot),
		encodeRef(r.Link),
		r.Category,
		strings.Join(r.Tags, ","),
	}
}

func decodeRecord(row []string) (*ledger.Record, error) {
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id %q: %w", row[0], err)
	}

	t, err := time.Parse(timeLayout, row[1])
	if err != nil {
		return nil, fmt.Errorf("time %q: %w", row[1], err)
	}

	sourceID, err := decodeUUID(row[5])
	if err != nil {
		return nil, fmt.Errorf("source_id %q: %w", row[5], err)
	}

	amount, err := decimal.NewFromString(row[7])
	if err != nil {
		return nil, fmt.Errorf("amount %q: %w", row[7], err)
	}

	fee, err := decimal.NewFromString(row[8])
	if err != nil {
		return nil, fmt.Errorf("fee %q: %w", row[8], err)
	}

	total, err := decimal.NewFromString(row[9])
	if err != nil {
		return nil, fmt.Errorf("total %q: %w", row[9], err)
	}

	allot, err := decodeRef(row[12])
	if err != nil {
		return nil, fmt.Errorf("allot %q: %w", row[12], err)
	}

	link, err := decodeRef(row[13])
	if err != nil {
		return nil, fmt.Errorf("link %q: %w", row[13], err)
	}

	var tags []string
	if row[15] != "" {
		tags = strings.Split(row[15], ",")
	}

	return &ledger.Record{
		ID:       id,
		Time:     t,
		Input:    ledger.Input(row[2]),
		Type:     row[3],
		Source:   row[4],
		SourceID: sourceID,
		Desc:     row[6],
		Amount:   amount,
		Fee:      fee,
		Total:    total,
		Curr:     row[10],
		Note:     row[11],
		Allot:    allot,
		Link:     link,
		Category: row[14],
		Tags:     tags,
	}, nil
}

func encodeUUID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}

	return id.String()
}

func decodeUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	return uuid.Parse(s)
}

// encodeRef writes an id reference, empty when unset.
func encodeRef(id int64) string {
	if id == 0 {
		return ""
	}

	return strconv.FormatInt(id, 10)
}

func decodeRef(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	return strconv.ParseInt(s, 10, 64)
}
