package store_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcorreia/kasa/internal/ledger"
	"github.com/dmcorreia/kasa/internal/ledger/store"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rec(day int, desc string) *ledger.Record {
	return &ledger.Record{
		Time:     time.Date(2024, 5, day, 10, 0, 0, 0, time.UTC),
		Input:    ledger.InputImported,
		Type:     "CARD",
		Source:   "Revolut PLN",
		SourceID: uuid.New(),
		Desc:     desc,
		Amount:   dec("-10.50"),
		Fee:      dec("-0.50"),
		Total:    dec("-11"),
		Curr:     "PLN",
		Note:     "has, commas, in it",
		Tags:     []string{"Food", "Eating out"},
	}
}

func newStore(t *testing.T) (*store.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.psv")
	s := store.New(path)
	require.NoError(t, s.Load())

	return s, path
}

func TestStore_LoadMissingFile(t *testing.T) {
	s, _ := newStore(t)
	assert.Empty(t, s.All())
}

func TestStore_RoundTrip(t *testing.T) {
	s, path := newStore(t)

	s.AddBulk([]*ledger.Record{rec(2, "second"), rec(1, "first")})
	s.AddBulk([]*ledger.Record{rec(3, "third | with pipes")})
	require.NoError(t, s.Save())

	loaded := store.New(path)
	require.NoError(t, loaded.Load())

	require.Len(t, loaded.All(), 3)

	for i, got := range loaded.All() {
		want := s.All()[i]

		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Time, got.Time)
		assert.Equal(t, want.Desc, got.Desc)
		assert.Equal(t, want.SourceID, got.SourceID)
		assert.True(t, got.Amount.Equal(want.Amount))
		assert.True(t, got.Fee.Equal(want.Fee))
		assert.True(t, got.Total.Equal(want.Total))
		assert.Equal(t, want.Note, got.Note)
		assert.Equal(t, want.Tags, got.Tags)
	}
}

func TestStore_CorruptHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.psv")
	require.NoError(t, os.WriteFile(path, []byte("time|acct|sum\n"), 0o644))

	s := store.New(path)
	err := s.Load()

	require.ErrorIs(t, err, ledger.ErrCorruptStore)
	assert.Empty(t, s.All(), "falls back to an empty table")
}

func TestStore_DuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.psv")

	row := func(id, desc string) string {
		return id + "|2024-05-01 10:00:00|imported|CARD|Revolut PLN||" + desc + "|-10|0|-10|PLN|||||"
	}

	content := strings.Join([]string{
		strings.Join(ledger.Header(), "|"),
		row("1", "first"),
		row("1", "second"),
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := store.New(path)
	err := s.Load()

	require.ErrorIs(t, err, ledger.ErrCorruptStore)
	assert.Contains(t, err.Error(), "duplicate id 1")
	assert.Empty(t, s.All(), "falls back to an empty table")
}

func TestStore_AddBulk(t *testing.T) {
	s, _ := newStore(t)

	// Records arrive without ids, later batch has an earlier time.
	s.AddBulk(
		[]*ledger.Record{rec(5, "e"), rec(3, "c")},
		[]*ledger.Record{rec(1, "a")},
	)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "c", "e"}, []string{all[0].Desc, all[1].Desc, all[2].Desc})

	seen := map[int64]bool{}

	for _, r := range all {
		assert.Positive(t, r.ID)
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
	}

	// Ids keep growing from the current max.
	s.AddBulk([]*ledger.Record{rec(2, "b")})
	r, ok := s.Get(4)
	require.True(t, ok)
	assert.Equal(t, "b", r.Desc)
}

func TestStore_GetAfterResort(t *testing.T) {
	s, _ := newStore(t)
	s.AddBulk([]*ledger.Record{rec(1, "a"), rec(2, "b")})

	b, ok := s.Get(2)
	require.True(t, ok)

	// Move b before a; position changes, id does not.
	b.Time = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	s.Resort()

	got, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", got.Desc)
	assert.Equal(t, "b", s.All()[0].Desc)
}

func TestStore_Backup(t *testing.T) {
	s, path := newStore(t)
	s.AddBulk([]*ledger.Record{rec(1, "a")})

	backup, err := s.Backup()
	require.NoError(t, err)

	pattern := regexp.MustCompile(`transactions_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.psv$`)
	assert.Regexp(t, pattern, backup)
	assert.Equal(t, filepath.Dir(path), filepath.Dir(backup), "written alongside the canonical file")

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), strings.Join(ledger.Header(), "|")))
	assert.Contains(t, string(data), "|a|")
}

func TestStore_Reset(t *testing.T) {
	s, path := newStore(t)
	s.AddBulk([]*ledger.Record{rec(1, "a"), rec(2, "b")})
	require.NoError(t, s.Save())

	backup, err := s.Reset()
	require.NoError(t, err)
	assert.FileExists(t, backup)
	assert.Empty(t, s.All())

	// The canonical file is now schema-only.
	loaded := store.New(path)
	require.NoError(t, loaded.Load())
	assert.Empty(t, loaded.All())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(ledger.Header(), "|")+"\n", string(data))
}
