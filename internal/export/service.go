// Package export writes the records of a search view as a plain CSV
// document for spreadsheets and reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dmcorreia/kasa/internal/ledger"
)

// header is the human-facing column subset, narrower than the persisted
// schema.
var header = []string{
	"time", "type", "source", "desc", "amount", "fee", "total", "curr",
	"category", "tags", "note",
}

// Service renders ledger query results.
type Service struct {
	ledger *ledger.Service
}

func NewService(l *ledger.Service) *Service {
	return &Service{ledger: l}
}

// Export runs the query and writes the matching records to w as CSV,
// returning the number of exported records. An empty query exports
// nothing: export always works from an explicit filter.
func (s *Service) Export(q ledger.Query, w io.Writer) (int, error) {
	view, err := s.ledger.Search(q)
	if err != nil {
		return 0, fmt.Errorf("searching ledger: %w", err)
	}

	if view == nil {
		return 0, fmt.Errorf("no filter requested")
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, r := range view.Records() {
		row := []string{
			r.Time.Format("2006-01-02 15:04"),
			r.Type,
			r.Source,
			r.Desc,
			r.Amount.StringFixed(2),
			r.Fee.StringFixed(2),
			r.Total.StringFixed(2),
			r.Curr,
			r.Category,
			strings.Join(r.Tags, ", "),
			r.Note,
		}

		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("writing record %d: %w", r.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing output: %w", err)
	}

	return view.Len(), nil
}
