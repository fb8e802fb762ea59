// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]Store{
		"sqlite": db,
		"memory": NewMemory(),
	}
}

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, "b", "1"))
			require.NoError(t, s.Set(ctx, "a", "2"))
			require.NoError(t, s.Set(ctx, "b", "3"))

			v, ok, err := s.Get(ctx, "b")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "3", v)

			keys, err := s.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, keys)

			require.NoError(t, s.Delete(ctx, "b"))
			require.NoError(t, s.Delete(ctx, "never-set"))
			_, ok, err = s.Get(ctx, "b")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "onboardingComplete", "true"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "onboardingComplete")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
	assert.Equal(t, path, s.Path())
}

func TestMemory_Closed(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())
	assert.ErrorIs(t, m.Set(context.Background(), "k", "v"), ErrClosed)
}
