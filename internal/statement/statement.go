// Package statement normalizes raw bank statement exports into ledger
// records. The column mappings of the originating source decide which raw
// columns feed which ledger field; the normalizer stamps source, currency
// and provenance, localizes times to the home timezone and computes
// totals. Ids stay zero for the store to backfill.
package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	date "github.com/joyt/godate"

	"github.com/dmcorreia/kasa/internal/encoding"
	"github.com/dmcorreia/kasa/internal/ledger"
	"github.com/dmcorreia/kasa/internal/source"
)

// Ledger fields a statement column can be mapped to.
const (
	FieldTime   = "time"
	FieldType   = "type"
	FieldDesc   = "desc"
	FieldAmount = "amount"
	FieldFee    = "fee"
)

type Normalizer struct {
	home *time.Location
}

func NewNormalizer(home *time.Location) *Normalizer {
	if home == nil {
		home = time.Local
	}

	return &Normalizer{home: home}
}

// colIndex maps column names to their position in the header row.
type colIndex map[string]int

// Parse reads one statement export and returns normalized records in file
// order. Rows before the header and footer rows without a parseable date
// are skipped.
func (n *Normalizer) Parse(src *source.Source, r io.Reader) ([]*ledger.Record, error) {
	fields := mappingsByField(src)

	if len(fields[FieldTime]) == 0 || len(fields[FieldAmount]) == 0 {
		return nil, fmt.Errorf("source %q has no time/amount column mappings", src.Name)
	}

	loc := n.home

	if src.Timezone != "" {
		var err error

		loc, err = time.LoadLocation(src.Timezone)
		if err != nil {
			return nil, fmt.Errorf("source %q: loading timezone: %w", src.Name, err)
		}
	}

	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows, fields)
	if cols == nil {
		return nil, fmt.Errorf("source %q: no header row matching the column mappings", src.Name)
	}

	p := &rowParser{src: src, cols: cols, fields: fields, from: loc, home: n.home}

	var recs []*ledger.Record

	for _, row := range rows[headerIdx+1:] {
		rec, ok := p.parse(row)
		if !ok {
			continue
		}

		recs = append(recs, rec)
	}

	return recs, nil
}

// mappingsByField groups the source's column mappings by target field.
func mappingsByField(src *source.Source) map[string][]string {
	fields := make(map[string][]string, len(src.Columns))
	for _, m := range src.Columns {
		fields[m.To] = append(fields[m.To], m.From...)
	}

	return fields
}

// findHeader scans for the first row containing every mapped column.
func findHeader(rows [][]string, fields map[string][]string) (colIndex, int) {
	var required []string
	for _, from := range fields {
		required = append(required, from...)
	}

	for idx, row := range rows {
		cols := make(colIndex, len(row))

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		ok := true

		for _, name := range required {
			if _, found := cols[name]; !found {
				ok = false
				break
			}
		}

		if ok {
			return cols, idx
		}
	}

	return nil, 0
}

type rowParser struct {
	src    *source.Source
	cols   colIndex
	fields map[string][]string
	from   *time.Location
	home   *time.Location

	// dateLayout caches the layout discovered on the first parsed row;
	// statements use one layout throughout.
	dateLayout string
}

func (p *rowParser) parse(row []string) (*ledger.Record, bool) {
	at, ok := p.parseTime(row)
	if !ok {
		return nil, false
	}

	amount, ok := p.parseAmount(row, p.fields[FieldAmount])
	if !ok {
		return nil, false
	}

	fee, _ := p.parseAmount(row, p.fields[FieldFee])

	return &ledger.Record{
		Time:     at,
		Input:    ledger.InputImported,
		Type:     p.firstCell(row, p.fields[FieldType]),
		Source:   p.src.Name,
		SourceID: p.src.ID,
		Desc:     p.firstCell(row, p.fields[FieldDesc]),
		Amount:   amount,
		Fee:      fee,
		Total:    amount.Add(fee),
		Curr:     p.src.Currency,
	}, true
}

// parseTime reads the mapped time cell, discovering the date layout on
// first use, and converts the statement's wall time to naive home time.
func (p *rowParser) parseTime(row []string) (time.Time, bool) {
	s := p.firstCell(row, p.fields[FieldTime])
	if s == "" {
		return time.Time{}, false
	}

	var (
		t   time.Time
		err error
	)

	if p.dateLayout != "" {
		t, err = time.Parse(p.dateLayout, s)
	}

	if p.dateLayout == "" || err != nil {
		t, p.dateLayout, err = date.ParseAndGetLayout(s)
		if err != nil {
			// Not a data row, probably a footer.
			return time.Time{}, false
		}
	}

	in := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, p.from)
	at := in.In(p.home)

	return time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute(), at.Second(), 0, time.UTC), true
}

// firstCell returns the first non-empty mapped cell, allowing fallback
// chains like Beneficiary then Description.
func (p *rowParser) firstCell(row []string, names []string) string {
	for _, name := range names {
		idx, ok := p.cols[name]
		if !ok || idx >= len(row) {
			continue
		}

		if v := strings.TrimSpace(row[idx]); v != "" {
			return v
		}
	}

	return ""
}

// sniffDelimiter picks the separator used by the export, since banks
// disagree even about that.
func sniffDelimiter(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))

	best, count := ',', bytes.Count(line, []byte(","))
	if c := bytes.Count(line, []byte(";")); c > count {
		best, count = ';', c
	}

	if c := bytes.Count(line, []byte("\t")); c > count {
		best = '\t'
	}

	return best
}
