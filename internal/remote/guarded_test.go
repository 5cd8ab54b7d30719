package remote

import (
	"context"
	"errors"
	"testing"
	"time"

	"ofrendas/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoGuarded(m *Memory) *Guarded {
	return NewGuarded(m, infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 2,
		OpenTimeout:      time.Hour,
		Ignore:           ErrorDeDatos,
	}))
}

func TestGuarded_AbreTrasFallosDeConexion(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	g := nuevoGuarded(m)

	m.Fallar("FetchItems", errors.New("dial tcp: connection refused"))
	for i := 0; i < 2; i++ {
		_, err := g.FetchItems(ctx, TablaMiembros)
		require.Error(t, err)
	}
	assert.Equal(t, infra.CBOpen, g.State())

	// open applies to every operation, files included
	m.Fallar("FetchItems", nil)
	_, err := g.FetchItems(ctx, TablaMiembros)
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
	err = g.UploadFile(ctx, "b", "a.xlsx", []byte("x"), true)
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
}

func TestGuarded_ErroresDeDatosNoCuentan(t *testing.T) {
	ctx := context.Background()
	g := nuevoGuarded(NewMemory())

	for i := 0; i < 5; i++ {
		_, err := g.Download(ctx, "b", "falta.xlsx")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = g.UpdateItem(ctx, TablaMiembros, "nope", Item{})
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, infra.CBClosed, g.State())
}

func TestGuarded_PublicURLNoPasaPorElBreaker(t *testing.T) {
	m := NewMemory()
	g := nuevoGuarded(m)
	m.Fallar("ListFiles", errors.New("timeout"))
	for i := 0; i < 2; i++ {
		_, _ = g.ListFiles(context.Background(), "b")
	}
	require.Equal(t, infra.CBOpen, g.State())
	assert.Equal(t, "memory://b/a.xlsx", g.PublicURL("b", "a.xlsx"))
}
