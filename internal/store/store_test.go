package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pos.db")

	s, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyItems, []byte(`[{"id":"1"}]`)))

	value, ok, err := s.Get(ctx, KeyItems)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), value)
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pos.db")

	s, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, KeyOrders, []byte("first")))
	require.NoError(t, s.Set(ctx, KeyOrders, []byte("second")))

	value, ok, err := s.Get(ctx, KeyOrders)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("second"), value)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pos.db")

	s, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyLoggedIn, []byte("true")))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, KeyLoggedIn)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("true"), value)
}

func TestSQLiteStore_DeleteAbsentKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pos.db")

	s, err := OpenSQLite(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Delete(ctx, "never-set"))

	require.NoError(t, s.Set(ctx, "key", []byte("value")))
	require.NoError(t, s.Delete(ctx, "key"))

	_, ok, err := s.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	_, ok, err := s.Get(ctx, KeyCustomerCart)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyCustomerCart, []byte("lines")))

	value, ok, err := s.Get(ctx, KeyCustomerCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("lines"), value)

	// Mutating the returned slice must not affect stored state.
	value[0] = 'X'
	again, _, err := s.Get(ctx, KeyCustomerCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("lines"), again)

	require.NoError(t, s.Delete(ctx, KeyCustomerCart))
	_, ok, err = s.Get(ctx, KeyCustomerCart)
	require.NoError(t, err)
	assert.False(t, ok)
}
