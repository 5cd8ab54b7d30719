package service

import (
	"context"
	"testing"

	"ofrendas/internal/dto"
	"ofrendas/internal/model"
	"ofrendas/internal/remote"
	"ofrendas/internal/repository"
	"ofrendas/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	bucketPrueba  = "reportes-semanales"
	iglesiaPrueba = "Iglesia Central"
)

// entorno wires every service over in-memory local and remote fakes.
type entorno struct {
	gw *remote.Memory

	registros  repository.RegistroRepository
	informes   repository.InformeRepository
	ajustes    repository.AjustesRepository
	subidas    repository.SubidaRepository
	miembros   *repository.Lista[model.Miembro]
	categorias *repository.Lista[model.Categoria]

	registro    RegistroService
	informe     InformeService
	nube        NubeService
	miembro     MiembroService
	categoria   CategoriaService
	comisionado ComisionadoService
	ajustesSvc  AjustesService
	admin       AdminService
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nuevoEntorno(t *testing.T, semilla ...string) *entorno {
	t.Helper()
	st := store.NewMemory()
	gw := remote.NewMemory()

	e := &entorno{
		gw:         gw,
		registros:  repository.NewRegistroRepository(st),
		informes:   repository.NewInformeRepository(st),
		ajustes:    repository.NewAjustesRepository(st, model.Formulas{DiezmoPorcentaje: dec("10"), UmbralRemanente: dec("1200")}),
		subidas:    repository.NewSubidaRepository(st),
		miembros:   repository.NewLista[model.Miembro](st, store.ClaveMiembros),
		categorias: repository.NewLista[model.Categoria](st, store.ClaveCategorias),
	}
	comisionados := repository.NewLista[model.Comisionado](st, store.ClaveComisionados)

	miembrosRemotos := repository.NewTablaRemota(gw, repository.MapeoMiembros)
	categoriasRemotas := repository.NewTablaRemota(gw, repository.MapeoCategorias)

	pub := NewPublicador(gw, bucketPrueba, iglesiaPrueba, e.categorias, e.subidas)
	e.registro = NewRegistroService(e.registros, e.ajustes, e.miembros, e.categorias, pub)
	e.informe = NewInformeService(e.registros, e.informes, e.ajustes, e.categorias, iglesiaPrueba)
	e.nube = NewNubeService(gw, bucketPrueba, e.registros, e.ajustes, e.miembros, e.categorias, e.subidas)
	e.miembro = NewMiembroService(e.miembros, miembrosRemotos)
	e.categoria = NewCategoriaService(e.categorias, categoriasRemotas)
	e.comisionado = NewComisionadoService(comisionados, repository.NewTablaRemota(gw, repository.MapeoComisionados))
	e.ajustesSvc = NewAjustesService(e.ajustes)
	e.admin = NewAdminService(miembrosRemotos, categoriasRemotas, e.miembro, e.categoria, e.comisionado, semilla)
	return e
}

func (e *entorno) nuevoMiembro(t *testing.T, nombre string) model.Miembro {
	t.Helper()
	resp, err := e.miembro.Crear(context.Background(), dto.CrearMiembroRequest{Nombre: nombre})
	require.NoError(t, err)
	return resp.Miembro
}

type donacion struct {
	miembro   model.Miembro
	categoria string
	monto     string
}

// semana creates, fills and saves one week.
func (e *entorno) semana(t *testing.T, dia, mes, anio int, ds ...donacion) dto.GuardarRegistroResponse {
	t.Helper()
	ctx := context.Background()
	_, err := e.registro.Crear(ctx, dto.CrearRegistroRequest{Dia: dia, Mes: mes, Anio: anio})
	require.NoError(t, err)
	for _, d := range ds {
		_, err := e.registro.AgregarOfrenda(ctx, dto.AgregarOfrendaRequest{
			MiembroID: d.miembro.ID,
			Categoria: d.categoria,
			Monto:     dec(d.monto),
		})
		require.NoError(t, err)
	}
	resp, err := e.registro.Guardar(ctx)
	require.NoError(t, err)
	return resp
}
