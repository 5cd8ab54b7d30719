package repository

import (
	"context"
	"testing"
	"time"

	"ofrendas/internal/model"
	"ofrendas/internal/remote"
	"ofrendas/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registro(id string, dia, mes, anio int) model.RegistroSemanal {
	return model.RegistroSemanal{ID: id, Dia: dia, Mes: mes, Anio: anio}
}

// ── Registros ─────────────────────────────────────────────────────────────────

func TestRegistroRepository_UpsertReemplazaEnSuLugar(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistroRepository(store.NewMemory())

	require.NoError(t, repo.Upsert(ctx, registro("a", 2, 3, 2025)))
	require.NoError(t, repo.Upsert(ctx, registro("b", 9, 3, 2025)))

	editado := registro("a", 2, 3, 2025)
	editado.Ministro = "Pastor Juan"
	require.NoError(t, repo.Upsert(ctx, editado))

	list, err := repo.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	got, err := repo.Obtener(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Pastor Juan", got.Ministro)
}

func TestRegistroRepository_ListarMasRecientePrimero(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistroRepository(store.NewMemory())
	for _, r := range []model.RegistroSemanal{
		registro("feb", 23, 2, 2025), registro("dic", 29, 12, 2024), registro("mar", 2, 3, 2025),
	} {
		require.NoError(t, repo.Upsert(ctx, r))
	}

	list, err := repo.Listar(ctx)
	require.NoError(t, err)
	ids := []string{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, []string{"mar", "feb", "dic"}, ids)
}

func TestRegistroRepository_Eliminar(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistroRepository(store.NewMemory())
	require.NoError(t, repo.Upsert(ctx, registro("a", 2, 3, 2025)))

	ok, err := repo.Eliminar(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Eliminar(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Obtener(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Informes ──────────────────────────────────────────────────────────────────

func TestInformeRepository_UnoPorPeriodo(t *testing.T) {
	ctx := context.Background()
	repo := NewInformeRepository(store.NewMemory())

	primero := model.InformeMensual{ID: model.InformeID(3, 2025), Mes: 3, Anio: 2025}
	primero.Formulario.IngDiezmos = "100.00"
	require.NoError(t, repo.Guardar(ctx, primero))

	segundo := primero
	segundo.Formulario.IngDiezmos = "200.00"
	require.NoError(t, repo.Guardar(ctx, segundo))
	require.NoError(t, repo.Guardar(ctx, model.InformeMensual{ID: model.InformeID(1, 2025), Mes: 1, Anio: 2025}))

	list, err := repo.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "report-2025-3", list[0].ID)
	assert.Equal(t, "200.00", list[0].Formulario.IngDiezmos)
}

// ── Ajustes ───────────────────────────────────────────────────────────────────

func TestAjustesRepository_ValoresPorDefecto(t *testing.T) {
	ctx := context.Background()
	def := model.Formulas{DiezmoPorcentaje: decimal.NewFromInt(10), UmbralRemanente: decimal.NewFromInt(1200)}
	repo := NewAjustesRepository(store.NewMemory(), def)

	f, err := repo.Formulas(ctx)
	require.NoError(t, err)
	assert.True(t, f.UmbralRemanente.Equal(decimal.NewFromInt(1200)))

	tema, err := repo.Tema(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.TemaClaro, tema)

	nuevas := model.Formulas{DiezmoPorcentaje: decimal.NewFromInt(12), UmbralRemanente: decimal.NewFromInt(900)}
	require.NoError(t, repo.GuardarFormulas(ctx, nuevas))
	f, err = repo.Formulas(ctx)
	require.NoError(t, err)
	assert.True(t, f.DiezmoPorcentaje.Equal(decimal.NewFromInt(12)))
}

// ── Subidas ───────────────────────────────────────────────────────────────────

func TestSubidaRepository_RecientesPrimeroConTope(t *testing.T) {
	ctx := context.Background()
	repo := NewSubidaRepository(store.NewMemory())
	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	for i := 0; i < maxSubidas+5; i++ {
		require.NoError(t, repo.Registrar(ctx, model.Subida{RegistroID: "r", Fecha: base.Add(time.Duration(i) * time.Minute)}))
	}

	list, err := repo.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, list, maxSubidas)
	assert.True(t, list[0].Fecha.After(list[1].Fecha))
}

// ── Remote tables ─────────────────────────────────────────────────────────────

func TestTablaRemota_MapeaColumnas(t *testing.T) {
	ctx := context.Background()
	gw := remote.NewMemory()
	miembros := NewTablaRemota(gw, MapeoMiembros)

	creado, err := miembros.Crear(ctx, model.Miembro{Nombre: "Ana", IsActive: true})
	require.NoError(t, err)
	assert.NotEmpty(t, creado.ID)
	assert.True(t, creado.IsActive)

	items, err := gw.FetchItems(ctx, remote.TablaMiembros)
	require.NoError(t, err)
	assert.Equal(t, "Ana", items[0]["name"])
	assert.Equal(t, true, items[0]["is_active"])

	creado.Nombre = "Ana María"
	creado.IsActive = false
	_, err = miembros.Actualizar(ctx, creado.ID, creado)
	require.NoError(t, err)

	list, err := miembros.Listar(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Miembro{{ID: creado.ID, Nombre: "Ana María", IsActive: false}}, list)
}

func TestTablaRemota_ErrorEnvuelto(t *testing.T) {
	gw := remote.NewMemory()
	com := NewTablaRemota(gw, MapeoComisionados)

	_, err := com.Actualizar(context.Background(), "nope", model.Comisionado{Nombre: "X"})
	assert.ErrorIs(t, err, remote.ErrNotFound)
	assert.ErrorContains(t, err, "comisionados")
}
