package source_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcorreia/kasa/internal/ledger"
	"github.com/dmcorreia/kasa/internal/source"
)

func TestRegistry_AddAndResolve(t *testing.T) {
	r := source.NewRegistry(filepath.Join(t.TempDir(), "sources.json"))
	require.NoError(t, r.Load())

	src := &source.Source{Name: "Revolut PLN", Currency: "PLN", Timezone: "UTC"}
	require.NoError(t, r.Add(src))
	assert.NotEqual(t, uuid.Nil, src.ID, "id assigned on registration")

	ref, err := r.Resolve("revolut pln")
	require.NoError(t, err)
	assert.Equal(t, src.ID, ref.ID)
	assert.Equal(t, "PLN", ref.Currency)

	_, err = r.Resolve("Millennium PLN")
	require.ErrorIs(t, err, ledger.ErrUnknownSource)

	err = r.Add(&source.Source{Name: "REVOLUT PLN", Currency: "PLN"})
	require.Error(t, err, "duplicate display name rejected")
}

func TestRegistry_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.json")

	r := source.NewRegistry(path)
	require.NoError(t, r.Load())

	src := &source.Source{Name: "Millennium PLN", Currency: "PLN", Timezone: "Europe/Warsaw"}
	src.MapColumn([]string{"Transaction date"}, "time")
	src.MapColumn([]string{"Benefeciary/Sender", "Description"}, "desc")
	src.MapColumn([]string{"Debits", "Credits"}, "amount")
	require.NoError(t, r.Add(src))
	require.NoError(t, r.Save())

	loaded := source.NewRegistry(path)
	require.NoError(t, loaded.Load())

	got, ok := loaded.Get("Millennium PLN")
	require.True(t, ok)
	assert.Equal(t, src.ID, got.ID)
	assert.Equal(t, "Europe/Warsaw", got.Timezone)
	require.Len(t, got.Columns, 3)
	assert.Equal(t, []string{"Debits", "Credits"}, got.Columns[2].From)
	assert.Equal(t, "amount", got.Columns[2].To)
}
