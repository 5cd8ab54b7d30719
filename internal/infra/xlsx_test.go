package infra

import (
	"testing"

	"ofrendas/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var categoriasPrueba = []string{"Agua", "Diezmo", "Luz", "Ordinaria", "Primicias"}

func registroPrueba() model.RegistroSemanal {
	return model.RegistroSemanal{
		ID: "wr-1", Dia: 2, Mes: 3, Anio: 2025, Ministro: "Pastor Juan",
		Ofrendas: []model.Ofrenda{
			{ID: "d1", MiembroID: "m1", MiembroNombre: "Ana", Categoria: "Diezmo", Monto: decimal.RequireFromString("1000")},
			{ID: "d2", MiembroID: "m2", MiembroNombre: "José Pérez", Categoria: "Ordinaria", Monto: decimal.RequireFromString("500")},
			{ID: "d3", MiembroID: "m1", MiembroNombre: "Ana", Categoria: "Luz", Monto: decimal.RequireFromString("12.50")},
		},
		Formulas: model.Formulas{DiezmoPorcentaje: decimal.NewFromInt(10), UmbralRemanente: decimal.NewFromInt(1200)},
	}
}

func TestNombreArchivoSemanal(t *testing.T) {
	r := registroPrueba()
	assert.Equal(t, "02-Marzo-25_Iglesia_Central.xlsx", NombreArchivoSemanal(r, "Iglesia Central"))
	assert.Equal(t, "02-Marzo-25_La_Empresa.xlsx", NombreArchivoSemanal(r, ""))
}

func TestParseNombreSemanal(t *testing.T) {
	dia, mes, anio, err := ParseNombreSemanal("02-marzo-25_Iglesia_Central.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2025}, []int{dia, mes, anio})

	for _, malo := range []string{"reporte.xlsx", "02-Brumario-25_X.xlsx", "xx-Marzo-25_X.xlsx"} {
		_, _, _, err := ParseNombreSemanal(malo)
		assert.ErrorIs(t, err, ErrNombreArchivo, malo)
	}
}

func TestExportarSemanal_HojaResumen(t *testing.T) {
	data, nombre, err := ExportarSemanal(registroPrueba(), categoriasPrueba, "La Empresa")
	require.NoError(t, err)
	assert.Equal(t, "02-Marzo-25_La_Empresa.xlsx", nombre)

	f, err := excelize.OpenReader(bytesReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{HojaResumen, HojaDetalle}, f.GetSheetList())

	filas, err := f.GetRows(HojaResumen, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Resumen Semanal"}, filas[0])
	assert.Equal(t, []string{"Fecha:", "2/3/2025"}, filas[2])
	assert.Equal(t, []string{"Ministro:", "Pastor Juan"}, filas[3])
	assert.Equal(t, []string{"Concepto", "Monto (C$)"}, filas[5])
	assert.Equal(t, []string{"Agua", "0"}, filas[6])
	assert.Equal(t, []string{"Diezmo", "1000"}, filas[7])
	assert.Equal(t, []string{"Luz", "12.5"}, filas[8])
	assert.Equal(t, []string{"TOTAL (Diezmo + Ordinaria)", "1500"}, filas[13])
	assert.Equal(t, []string{"Diezmo de Diezmo (10%)", "150"}, filas[14])
	assert.Equal(t, []string{"Remanente (Umbral C$ 1200)", "300"}, filas[15])
	assert.Equal(t, []string{"Gomer del Ministro", "1350"}, filas[16])
}

func TestExportarSemanal_IdaYVuelta(t *testing.T) {
	r := registroPrueba()
	data, _, err := ExportarSemanal(r, categoriasPrueba, "La Empresa")
	require.NoError(t, err)

	leidas, err := LeerDetalleOfrendas(data)
	require.NoError(t, err)
	require.Len(t, leidas, len(r.Ofrendas))
	for i, o := range r.Ofrendas {
		assert.Equal(t, o.MiembroNombre, leidas[i].MiembroNombre)
		assert.Equal(t, o.Categoria, leidas[i].Categoria)
		assert.True(t, o.Monto.Equal(leidas[i].Monto), "monto %s != %s", o.Monto, leidas[i].Monto)
		assert.NotEmpty(t, leidas[i].ID)
		assert.NotEqual(t, o.ID, leidas[i].ID)
	}
}

func TestExportarSemanal_Idempotente(t *testing.T) {
	r := registroPrueba()
	a, _, err := ExportarSemanal(r, categoriasPrueba, "La Empresa")
	require.NoError(t, err)
	b, _, err := ExportarSemanal(r, categoriasPrueba, "La Empresa")
	require.NoError(t, err)

	fa, err := LeerDetalleOfrendas(a)
	require.NoError(t, err)
	fb, err := LeerDetalleOfrendas(b)
	require.NoError(t, err)
	require.Len(t, fb, len(fa))
	for i := range fa {
		assert.Equal(t, fa[i].MiembroNombre, fb[i].MiembroNombre)
		assert.True(t, fa[i].Monto.Equal(fb[i].Monto))
	}
}

func TestLeerDetalleOfrendas_SinHoja(t *testing.T) {
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = LeerDetalleOfrendas(buf.Bytes())
	assert.ErrorContains(t, err, "Detalle de Ofrendas")
}

func TestLeerDetalleOfrendas_MontoInvalido(t *testing.T) {
	f := excelize.NewFile()
	_ = f.SetSheetName("Sheet1", HojaDetalle)
	_ = f.SetSheetRow(HojaDetalle, "A1", &[]interface{}{"Miembro", "Categoría", "Monto"})
	_ = f.SetSheetRow(HojaDetalle, "A2", &[]interface{}{"Ana", "Diezmo", "mucho"})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = LeerDetalleOfrendas(buf.Bytes())
	assert.ErrorContains(t, err, "fila 2")
}
