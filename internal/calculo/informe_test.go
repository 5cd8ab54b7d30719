package calculo

import (
	"testing"

	"ofrendas/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAcumular_SumaDeRedondeados(t *testing.T) {
	semanas := []model.RegistroSemanal{
		{Dia: 2, Mes: 3, Anio: 2025, Ofrendas: []model.Ofrenda{ofrenda("Diezmo", "125")}, Formulas: formulas("10", "1200")},
		{Dia: 9, Mes: 3, Anio: 2025, Ofrendas: []model.Ofrenda{ofrenda("Diezmo", "125")}, Formulas: formulas("10", "1200")},
	}

	a := Acumular(semanas)

	assert.Equal(t, 2, a.Semanas)
	assertDec(t, "250", a.Diezmo)
	// 12.5 rounds to 13 each week; rounding the monthly 25 would give 25.
	assertDec(t, "26", a.DiezmoDeDiezmo)
	assertDec(t, "224", a.Gomer)
}

func TestAcumular_CadaSemanaConSuSnapshot(t *testing.T) {
	semanas := []model.RegistroSemanal{
		{Ofrendas: []model.Ofrenda{ofrenda("Diezmo", "1000"), ofrenda("Luz", "40")}, Formulas: formulas("10", "0")},
		{Ofrendas: []model.Ofrenda{ofrenda("Ordinaria", "1000"), ofrenda("Agua", "60")}, Formulas: formulas("20", "0")},
	}

	a := Acumular(semanas)

	assertDec(t, "1000", a.Diezmo)
	assertDec(t, "1000", a.Ordinaria)
	assertDec(t, "100", a.Servicios)
	assertDec(t, "300", a.DiezmoDeDiezmo)
	assertDec(t, "1700", a.Gomer)
}

func TestCalcularInforme_TotalesEscalonados(t *testing.T) {
	var f model.FormularioInforme
	f.SaldoAnterior = "100"
	f.IngDiezmos = "1000.50"
	f.IngOfrendasOrdinarias = "500"
	f.IngAyudaEncargado = "abc" // unparseable reads as zero
	f.IngCeremonial = "20"
	f.IngSantaCena = "30"
	f.IngServiciosPublicos = "75"
	f.IngAdquisicionTerreno = "25"
	f.EgrAsignacion = "1200"
	f.EgrGomer = "900"
	f.EgrEvangelizacion = "10"
	f.EgrServiciosPublicos = "75"
	f.EgrTraspasoConstruccion = "15"

	tot := CalcularInforme(f)

	assertDec(t, "1500.50", tot.IngOfrendas)
	assertDec(t, "50", tot.IngEspeciales)
	assertDec(t, "100", tot.IngLocales)
	assertDec(t, "1650.50", tot.TotalIngresos)
	assertDec(t, "1750.50", tot.TotalDisponible)
	assertDec(t, "300", tot.TotalManutencion)
	assertDec(t, "10", tot.EgrEspeciales)
	assertDec(t, "90", tot.EgrLocales)
	assertDec(t, "1000", tot.TotalSalidas)
	assertDec(t, "750.50", tot.Remanente)
}

func TestCalcularInforme_FormularioVacio(t *testing.T) {
	tot := CalcularInforme(model.FormularioInforme{})
	assertDec(t, "0", tot.TotalIngresos)
	assertDec(t, "0", tot.Remanente)
}
