package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount extracts an amount from the mapped cells. A two-column
// mapping is a debit/credit pair: the first column holds expenses and is
// forced negative, the second income, forced positive. A single column
// holds a signed value.
func (p *rowParser) parseAmount(row []string, names []string) (decimal.Decimal, bool) {
	if len(names) == 0 {
		return decimal.Zero, false
	}

	if len(names) == 2 {
		if d, ok := p.parseCell(row, names[0]); ok {
			return d.Abs().Neg(), true
		}

		if d, ok := p.parseCell(row, names[1]); ok {
			return d.Abs(), true
		}

		return decimal.Zero, false
	}

	for _, name := range names {
		if d, ok := p.parseCell(row, name); ok {
			return d, true
		}
	}

	return decimal.Zero, false
}

func (p *rowParser) parseCell(row []string, name string) (decimal.Decimal, bool) {
	idx, ok := p.cols[name]
	if !ok || idx >= len(row) {
		return decimal.Zero, false
	}

	s := strings.TrimSpace(row[idx])
	if s == "" {
		return decimal.Zero, false
	}

	d, err := parseDecimal(s)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

// parseDecimal handles both "1,234.56" and European "1.234,56" layouts.
// With both separators present the last one is the decimal point; a lone
// separator is the decimal point, since statement amounts carry decimals;
// a repeated separator is thousands grouping, as in "1,234,567".
func parseDecimal(s string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', '\'':
			return -1
		}

		return r
	}, s)

	dot := strings.LastIndexByte(clean, '.')
	comma := strings.LastIndexByte(clean, ',')

	switch {
	case dot >= 0 && comma >= 0 && comma > dot:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	case dot >= 0 && comma >= 0:
		clean = strings.ReplaceAll(clean, ",", "")
	case comma >= 0:
		if strings.Count(clean, ",") > 1 {
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			clean = strings.Replace(clean, ",", ".", 1)
		}
	case strings.Count(clean, ".") > 1:
		clean = strings.ReplaceAll(clean, ".", "")
	}

	return decimal.NewFromString(clean)
}
