package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcorreia/kasa/internal/suggest/store"
)

func newStore(t *testing.T) (*store.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "categories.json")
	s := store.New(path)
	require.NoError(t, s.Load())

	return s, path
}

func TestStore_FindMatch(t *testing.T) {
	s, _ := newStore(t)

	require.NoError(t, s.CreateMapping("jmp", "Shopping"))
	require.NoError(t, s.CreateMapping("JMP S.A. BIEDRONKA", "Groceries"))

	category, err := s.FindMatch("jmp s.a. biedronka 4578 warszawa")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", category, "the longest matching pattern wins")

	category, err = s.FindMatch("JMP HOLDING DIVIDEND")
	require.NoError(t, err)
	assert.Equal(t, "Shopping", category)

	category, err = s.FindMatch("uber eats")
	require.NoError(t, err)
	assert.Empty(t, category)
}

func TestStore_RoundTrip(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, s.CreateMapping("biedronka", "Groceries"))

	loaded := store.New(path)
	require.NoError(t, loaded.Load())

	category, err := loaded.FindMatch("BIEDRONKA 123")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", category)
}
