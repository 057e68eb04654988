package statement_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcorreia/kasa/internal/ledger"
	"github.com/dmcorreia/kasa/internal/source"
	"github.com/dmcorreia/kasa/internal/statement"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func warsaw(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	return loc
}

func revolutSource() *source.Source {
	src := &source.Source{
		ID:       uuid.New(),
		Name:     "Revolut PLN",
		Currency: "PLN",
		Timezone: "UTC",
	}
	src.MapColumn([]string{"Started Date"}, statement.FieldTime)
	src.MapColumn([]string{"Type"}, statement.FieldType)
	src.MapColumn([]string{"Description"}, statement.FieldDesc)
	src.MapColumn([]string{"Amount"}, statement.FieldAmount)
	src.MapColumn([]string{"Fee"}, statement.FieldFee)

	return src
}

func TestNormalizer_ParseRevolut(t *testing.T) {
	n := statement.NewNormalizer(warsaw(t))

	export := strings.Join([]string{
		"Type,Product,Started Date,Completed Date,Description,Amount,Fee,Currency,State,Balance",
		"CARD_PAYMENT,Current,2023-07-13 22:30:00,2023-07-14 08:01:12,Jatagan Kebab,-26.50,-1.00,PLN,COMPLETED,100.00",
		"TOPUP,Current,2023-07-15 09:00:00,2023-07-15 09:00:01,Payment from Employer,5000.00,0.00,PLN,COMPLETED,5100.00",
	}, "\n")

	src := revolutSource()
	recs, err := n.Parse(src, strings.NewReader(export))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	kebab := recs[0]
	assert.Zero(t, kebab.ID, "ids are left for the store to assign")
	assert.Equal(t, ledger.InputImported, kebab.Input)
	assert.Equal(t, "CARD_PAYMENT", kebab.Type)
	assert.Equal(t, "Revolut PLN", kebab.Source)
	assert.Equal(t, src.ID, kebab.SourceID)
	assert.Equal(t, "Jatagan Kebab", kebab.Desc)
	assert.True(t, kebab.Amount.Equal(dec("-26.50")))
	assert.True(t, kebab.Fee.Equal(dec("-1.00")))
	assert.True(t, kebab.Total.Equal(dec("-27.50")))
	assert.Equal(t, "PLN", kebab.Curr)

	// 22:30 UTC is already the next day in Warsaw during summer.
	assert.Equal(t, time.Date(2023, 7, 14, 0, 30, 0, 0, time.UTC), kebab.Time)

	topup := recs[1]
	assert.True(t, topup.Total.Equal(dec("5000.00")))
	assert.Equal(t, time.Date(2023, 7, 15, 11, 0, 0, 0, time.UTC), topup.Time)
}

func TestNormalizer_ParseDebitCreditPair(t *testing.T) {
	n := statement.NewNormalizer(warsaw(t))

	src := &source.Source{
		ID:       uuid.New(),
		Name:     "Millennium PLN",
		Currency: "PLN",
		Timezone: "Europe/Warsaw",
	}
	src.MapColumn([]string{"Transaction date"}, statement.FieldTime)
	src.MapColumn([]string{"Benefeciary/Sender", "Description"}, statement.FieldDesc)
	src.MapColumn([]string{"Debits", "Credits"}, statement.FieldAmount)

	// Semicolon separated, preamble before the header, European decimals,
	// a positive value in the debit column and a footer summary row.
	export := strings.Join([]string{
		"Account;12 3456 7890",
		"Period;2023-08-01;2023-08-31",
		"Transaction date;Settlement date;Benefeciary/Sender;Description;Debits;Credits",
		"2023-08-02;2023-08-03;Biedronka;;1 234,56;",
		"2023-08-04;2023-08-04;;Salary August;;4 500,00",
		"Total;;;;1 234,56;4 500,00",
	}, "\n")

	recs, err := n.Parse(src, strings.NewReader(export))
	require.NoError(t, err)
	require.Len(t, recs, 2, "preamble and footer rows are skipped")

	groceries := recs[0]
	assert.Equal(t, "Biedronka", groceries.Desc)
	assert.True(t, groceries.Amount.Equal(dec("-1234.56")), "debit column is forced negative, got %s", groceries.Amount)
	assert.Equal(t, time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC), groceries.Time)

	salary := recs[1]
	assert.Equal(t, "Salary August", salary.Desc, "description fallback when the first mapped column is empty")
	assert.True(t, salary.Amount.Equal(dec("4500.00")))
	assert.True(t, salary.Total.Equal(dec("4500.00")))
}

func TestNormalizer_ThousandsGrouping(t *testing.T) {
	n := statement.NewNormalizer(warsaw(t))

	src := &source.Source{ID: uuid.New(), Name: "Legacy Bank", Currency: "PLN", Timezone: "Europe/Warsaw"}
	src.MapColumn([]string{"Date"}, statement.FieldTime)
	src.MapColumn([]string{"Description"}, statement.FieldDesc)
	src.MapColumn([]string{"Amount"}, statement.FieldAmount)

	export := strings.Join([]string{
		"Date,Description,Amount",
		`2023-07-01,Grouped commas,"1,234,567"`,
		"2023-07-02,Grouped dots,1.234.567",
		"2023-07-03,Apostrophes,1'234.50",
	}, "\n")

	recs, err := n.Parse(src, strings.NewReader(export))
	require.NoError(t, err)
	require.Len(t, recs, 3, "grouped amounts must not drop rows")

	assert.True(t, recs[0].Amount.Equal(dec("1234567")), "got %s", recs[0].Amount)
	assert.True(t, recs[1].Amount.Equal(dec("1234567")), "got %s", recs[1].Amount)
	assert.True(t, recs[2].Amount.Equal(dec("1234.50")), "got %s", recs[2].Amount)
}

func TestNormalizer_MissingMappings(t *testing.T) {
	n := statement.NewNormalizer(warsaw(t))

	src := &source.Source{ID: uuid.New(), Name: "Broken", Currency: "PLN"}
	src.MapColumn([]string{"Description"}, statement.FieldDesc)

	_, err := n.Parse(src, strings.NewReader("Description\nfoo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no time/amount column mappings")
}

func TestNormalizer_NoMatchingHeader(t *testing.T) {
	n := statement.NewNormalizer(warsaw(t))

	src := revolutSource()
	_, err := n.Parse(src, strings.NewReader("Datum,Betrag\n2023-07-13,-5.00\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
