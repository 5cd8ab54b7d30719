package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documento struct {
	Nombre string   `json:"nombre"`
	Lista  []string `json:"lista"`
}

func ejercitarStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	var vacio documento
	found, err := s.Get(ctx, ClaveFormulas, &vacio)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, ClaveFormulas, documento{Nombre: "uno", Lista: []string{"a"}}))
	require.NoError(t, s.Set(ctx, ClaveFormulas, documento{Nombre: "dos", Lista: []string{"a", "b"}}))

	var got documento
	found, err = s.Get(ctx, ClaveFormulas, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, documento{Nombre: "dos", Lista: []string{"a", "b"}}, got)
}

func TestMemory_GetSet(t *testing.T) {
	ejercitarStore(t, NewMemory())
}

func TestMemory_NoCompartePunteros(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	lista := []string{"a"}
	require.NoError(t, s.Set(ctx, ClaveCategorias, lista))
	lista[0] = "cambiado"

	var got []string
	_, err := s.Get(ctx, ClaveCategorias, &got)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
}

func TestSQLite_GetSet(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "datos", "ofrendas.db"))
	require.NoError(t, err)
	defer s.Close()

	ejercitarStore(t, s)
}

func TestSQLite_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ofrendas.db")
	ctx := context.Background()

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, ClaveTema, "dark"))
	require.NoError(t, s.Close())

	// Reopening runs the migrations again; they must be a no-op.
	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	var tema string
	found, err := s.Get(ctx, ClaveTema, &tema)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", tema)
}
