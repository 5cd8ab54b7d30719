//go:build integration

package router

// End-to-end tests over real backing services: Redis as the local store and
// Postgres as the remote tables, both via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"net/http"
	"testing"
	"time"

	"ofrendas/internal/app"
	"ofrendas/internal/config"
	"ofrendas/internal/dto"
	"ofrendas/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Test Suite Setup ─────────────────────────────────────────────────────────

func configContenedores(t *testing.T) *config.Config {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("ofrendas_test"),
		tcPostgres.WithUsername("ofrendas"),
		tcPostgres.WithPassword("ofrendas"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })
	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })
	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	return &config.Config{
		Env:                    "test",
		LocalStore:             "redis",
		RedisURL:               rdURL,
		RemoteBackend:          "postgres",
		DatabaseURL:            pgURL,
		StorageBackend:         "memory",
		WeeklyBucket:           "reportes-semanales",
		CBFailureThreshold:     3,
		CBOpenTimeout:          30 * time.Second,
		ChurchName:             "Central",
		DefaultDiezmoPct:       "10",
		DefaultRemanenteUmbral: "1200",
		SeedMembers:            []string{"Ana", "Luis"},
	}
}

func arrancar(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return New(cfg, a)
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_SemillaSemanaYReinicio(t *testing.T) {
	cfg := configContenedores(t)
	r := arrancar(t, cfg)

	w := hacer(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 1. Seed the remote tables; the local lists follow.
	w = hacer(r, http.MethodPost, "/v1/semilla", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sem := leer[dto.SemillaResponse](t, w)
	assert.Equal(t, 7, sem.Insertados)
	assert.Empty(t, sem.Advertencia)

	// A second run only inserts what is missing.
	w = hacer(r, http.MethodPost, "/v1/semilla", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, leer[dto.SemillaResponse](t, w).Insertados)

	w = hacer(r, http.MethodGet, "/v1/miembros", nil)
	require.Equal(t, http.StatusOK, w.Code)
	miembros := leer[[]model.Miembro](t, w)
	require.Len(t, miembros, 2)

	// 2. Record and save a week.
	w = hacer(r, http.MethodPost, "/v1/semana-actual", dto.CrearRegistroRequest{Dia: 9, Mes: 3, Anio: 2025})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = hacer(r, http.MethodPost, "/v1/semana-actual/ofrendas", map[string]any{"miembro_id": miembros[0].ID, "categoria": "Diezmo", "monto": "1250"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = hacer(r, http.MethodPost, "/v1/semana-actual/guardar", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	g := leer[dto.GuardarRegistroResponse](t, w)
	assert.True(t, g.Subida.Exitosa)

	// 3. A member created through the API reaches Postgres.
	crearMiembro(t, r, "Marta")

	// 4. Restart over the same Redis and Postgres.
	r2 := arrancar(t, cfg)

	w = hacer(r2, http.MethodGet, "/v1/semanas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	semanas := leer[[]dto.RegistroResponse](t, w)
	require.Len(t, semanas, 1)
	assert.Equal(t, g.Registro.ID, semanas[0].ID)

	w = hacer(r2, http.MethodPost, "/v1/sincronizar", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sync := leer[dto.SincronizarResponse](t, w)
	assert.Equal(t, 3, sync.Miembros)
	assert.Equal(t, 5, sync.Categorias)

	w = hacer(r2, http.MethodGet, "/v1/resumen-mensual?mes=3&anio=2025", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestE2E_NombreDuplicado(t *testing.T) {
	r := arrancar(t, configContenedores(t))

	crearMiembro(t, r, "Ana")
	w := hacer(r, http.MethodPost, "/v1/miembros", dto.CrearMiembroRequest{Nombre: "ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = hacer(r, http.MethodGet, "/v1/miembros", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, leer[[]model.Miembro](t, w), 1)
}
