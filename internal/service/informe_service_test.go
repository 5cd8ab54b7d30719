package service

import (
	"context"
	"testing"

	"ofrendas/internal/dto"
	"ofrendas/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInforme_CargarDatosSumaSemanasRedondeadas(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)
	ana := e.nuevoMiembro(t, "Ana")
	_, err := e.ajustesSvc.GuardarIglesia(ctx, dto.IglesiaRequest{Distrito: "Norte", GradoMinistro: "Obrero"})
	require.NoError(t, err)

	e.semana(t, 2, 3, 2025, donacion{ana, "Diezmo", "125"}, donacion{ana, "Luz", "30"})
	e.semana(t, 9, 3, 2025, donacion{ana, "Diezmo", "125"}, donacion{ana, "Agua", "20"})
	e.semana(t, 6, 4, 2025, donacion{ana, "Diezmo", "999"})

	var f model.FormularioInforme
	f.IngPrimicias = "40"
	f.EgrCeremonial = "15"
	resp, err := e.informe.CargarDatos(ctx, dto.CargarDatosRequest{Mes: 3, Anio: 2025, Formulario: f})
	require.NoError(t, err)

	got := resp.Formulario
	assert.Equal(t, 2, resp.Semanas)
	assert.Equal(t, "Datos cargados para Marzo 2025.", resp.Mensaje)
	assert.Equal(t, "250.00", got.IngDiezmos)
	assert.Equal(t, "", got.IngOfrendasOrdinarias)
	assert.Equal(t, "50.00", got.IngServiciosPublicos)
	assert.Equal(t, "50.00", got.EgrServiciosPublicos)
	// 12.5 rounds to 13 on each week
	assert.Equal(t, "26.00", got.DistDireccion)
	assert.Equal(t, "224.00", got.EgrGomer)
	assert.Equal(t, "1200", got.EgrAsignacion)
	assert.Equal(t, "Marzo", got.MesReporte)
	assert.Equal(t, "2025", got.AnoReporte)
	assert.Equal(t, iglesiaPrueba, got.NombreIglesia)
	assert.Equal(t, "Norte", got.Distrito)
	assert.Equal(t, "Obrero", got.GradoMinistro)

	// hand-entered fields survive
	assert.Equal(t, "40", got.IngPrimicias)
	assert.Equal(t, "15", got.EgrCeremonial)

	assert.True(t, dec("290").Equal(resp.Totales.IngOfrendas))
	assert.True(t, dec("976").Equal(resp.Totales.TotalManutencion))
}

func TestInforme_CargarDatosSinRegistros(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)
	e.semana(t, 2, 3, 2025)

	var f model.FormularioInforme
	f.IngPrimicias = "40"
	_, err := e.informe.CargarDatos(ctx, dto.CargarDatosRequest{Mes: 5, Anio: 2025, Formulario: f})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSinRegistros)
	assert.True(t, EsNoEncontrado(err))
	assert.Equal(t, "No se encontraron registros para Mayo 2025.", err.Error())
}

func TestInforme_CargarDatosMinistroDeLaPrimeraSemana(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)

	primera := e.semana(t, 2, 3, 2025)
	ministro := "Pastor Juan"
	_, err := e.registro.Actualizar(ctx, primera.Registro.ID, dto.ActualizarRegistroRequest{Ministro: &ministro})
	require.NoError(t, err)
	e.semana(t, 16, 3, 2025)

	resp, err := e.informe.CargarDatos(ctx, dto.CargarDatosRequest{Mes: 3, Anio: 2025})
	require.NoError(t, err)
	assert.Equal(t, "Pastor Juan", resp.Formulario.NombreMinistro)
}

func TestInforme_CargarDatosPeriodoInvalido(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.informe.CargarDatos(context.Background(), dto.CargarDatosRequest{Mes: 13, Anio: 2025})
	assert.ErrorIs(t, err, ErrPeriodoInvalido)
}

func TestInforme_GuardarNoSobrescribeSinPermiso(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)

	var f model.FormularioInforme
	f.SaldoAnterior = "100"
	primero, err := e.informe.Guardar(ctx, dto.GuardarInformeRequest{Mes: 3, Anio: 2025, Formulario: f})
	require.NoError(t, err)
	assert.Equal(t, model.InformeID(3, 2025), primero.ID)

	f.SaldoAnterior = "999"
	_, err = e.informe.Guardar(ctx, dto.GuardarInformeRequest{Mes: 3, Anio: 2025, Formulario: f})
	assert.ErrorIs(t, err, ErrInformeExistente)
	assert.True(t, EsConflicto(err))

	got, err := e.informe.Obtener(ctx, primero.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", got.Formulario.SaldoAnterior)

	_, err = e.informe.Guardar(ctx, dto.GuardarInformeRequest{Mes: 3, Anio: 2025, Formulario: f, Sobrescribir: true})
	require.NoError(t, err)

	list, err := e.informe.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "999", list[0].Formulario.SaldoAnterior)
	assert.True(t, dec("999").Equal(list[0].Totales.TotalDisponible))
}

func TestInforme_Eliminar(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)
	inf, err := e.informe.Guardar(ctx, dto.GuardarInformeRequest{Mes: 1, Anio: 2025})
	require.NoError(t, err)

	require.NoError(t, e.informe.Eliminar(ctx, inf.ID))
	assert.ErrorIs(t, e.informe.Eliminar(ctx, inf.ID), ErrInformeNoEncontrado)
	_, err = e.informe.Obtener(ctx, inf.ID)
	assert.ErrorIs(t, err, ErrInformeNoEncontrado)
}

func TestInforme_GenerarPDF(t *testing.T) {
	e := nuevoEntorno(t)
	var f model.FormularioInforme
	f.NombreIglesia = "Central"
	f.MesReporte = "Marzo"
	f.AnoReporte = "2025"
	f.IngDiezmos = "1000"

	arch, err := e.informe.GenerarPDF(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, "Marzo-2025-Central.pdf", arch.Nombre)
	assert.Equal(t, "%PDF", string(arch.Datos[:4]))
}

func TestInforme_ResumenMensual(t *testing.T) {
	ctx := context.Background()
	e := nuevoEntorno(t)
	ana := e.nuevoMiembro(t, "Ana")

	e.semana(t, 9, 3, 2025, donacion{ana, "Ordinaria", "200"}, donacion{ana, "Luz", "10"})
	e.semana(t, 2, 3, 2025, donacion{ana, "Diezmo", "1000"})

	resp, err := e.informe.ResumenMensual(ctx, 3, 2025)
	require.NoError(t, err)

	require.Len(t, resp.Semanas, 2)
	assert.Equal(t, 2, resp.Semanas[0].Dia, "weeks read oldest first")
	assert.True(t, dec("1200").Equal(resp.Total))
	assert.True(t, dec("120").Equal(resp.DiezmoDeDiezmo))
	assert.True(t, dec("1080").Equal(resp.Gomer))
	assert.True(t, dec("10").Equal(resp.Servicios))

	sub := map[string]string{}
	for _, s := range resp.Categorias {
		sub[s.Categoria] = s.Monto.String()
	}
	assert.Equal(t, map[string]string{"Agua": "0", "Diezmo": "1000", "Luz": "10", "Ordinaria": "200", "Primicias": "0"}, sub)
}
