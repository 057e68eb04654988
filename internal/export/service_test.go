package export_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmcorreia/kasa/internal/export"
	"github.com/dmcorreia/kasa/internal/ledger"
	"github.com/dmcorreia/kasa/internal/ledger/store"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newService(t *testing.T) *export.Service {
	t.Helper()

	ctrl := gomock.NewController(t)

	st := store.New(filepath.Join(t.TempDir(), "transactions.psv"))
	require.NoError(t, st.Load())

	st.AddBulk([]*ledger.Record{
		{
			Time:   time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
			Input:  ledger.InputManual,
			Type:   "CARD",
			Source: "Revolut PLN",
			Desc:   "Jatagan Kebab",
			Amount: dec("-26.5"),
			Fee:    dec("-1"),
			Total:  dec("-27.5"),
			Curr:   "PLN",
			Note:   "lunch",
			Tags:   []string{"Food", "Eating out"},
		},
		{
			Time:   time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
			Input:  ledger.InputManual,
			Type:   "TRANSFER",
			Source: "Revolut PLN",
			Desc:   "Salary",
			Amount: dec("5000"),
			Total:  dec("5000"),
			Curr:   "PLN",
		},
	})

	engine := ledger.NewService(
		st,
		ledger.NewMockSourceResolver(ctrl),
		ledger.NewMockVocabulary(ctrl),
		time.UTC,
	)

	return export.NewService(engine)
}

func TestService_Export(t *testing.T) {
	svc := newService(t)

	var buf bytes.Buffer

	n, err := svc.Export(ledger.Query{Desc: ledger.Exact("kebab")}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "time,type,source,desc,amount,fee,total,curr,category,tags,note", lines[0])
	assert.Equal(t, `2024-03-01 12:30,CARD,Revolut PLN,Jatagan Kebab,-26.50,-1.00,-27.50,PLN,,"Food, Eating out",lunch`, lines[1])
}

func TestService_ExportWholeRange(t *testing.T) {
	svc := newService(t)

	var buf bytes.Buffer

	n, err := svc.Export(ledger.Query{StartDate: "2024-03-01", EndDate: "2024-03-31"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_ExportNeedsFilter(t *testing.T) {
	svc := newService(t)

	var buf bytes.Buffer

	_, err := svc.Export(ledger.Query{}, &buf)
	require.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing written without an explicit filter")
}
