package calculo

import (
	"ofrendas/internal/model"

	"github.com/shopspring/decimal"
)

// TotalesInforme are the layered totals of the monthly report form.
type TotalesInforme struct {
	IngOfrendas      decimal.Decimal `json:"ing_ofrendas"`
	IngEspeciales    decimal.Decimal `json:"ing_especiales"`
	IngLocales       decimal.Decimal `json:"ing_locales"`
	TotalIngresos    decimal.Decimal `json:"total_ingresos"`
	SaldoAnterior    decimal.Decimal `json:"saldo_anterior"`
	TotalDisponible  decimal.Decimal `json:"total_disponible"`
	TotalManutencion decimal.Decimal `json:"total_manutencion"`
	EgrEspeciales    decimal.Decimal `json:"egr_especiales"`
	EgrLocales       decimal.Decimal `json:"egr_locales"`
	TotalSalidas     decimal.Decimal `json:"total_salidas"`
	Remanente        decimal.Decimal `json:"remanente"`
}

// CalcularInforme computes the totals from the whole form, aggregated and
// hand-entered fields alike. Nothing is rounded here.
func CalcularInforme(f model.FormularioInforme) TotalesInforme {
	var t TotalesInforme
	t.IngOfrendas = model.Suma(f.IngresosOfrendas())
	t.IngEspeciales = model.Suma(f.IngresosEspeciales())
	t.IngLocales = model.Suma(f.IngresosLocales())
	t.TotalIngresos = t.IngOfrendas.Add(t.IngEspeciales).Add(t.IngLocales)

	t.SaldoAnterior = model.Numero(f.SaldoAnterior)
	t.TotalDisponible = t.SaldoAnterior.Add(t.TotalIngresos)

	gomer := model.Numero(f.EgrGomer)
	t.TotalManutencion = model.Numero(f.EgrAsignacion).Sub(gomer)
	t.EgrEspeciales = model.Suma(f.EgresosEspeciales())
	t.EgrLocales = model.Suma(f.EgresosLocales())
	t.TotalSalidas = gomer.Add(t.EgrEspeciales).Add(t.EgrLocales)

	t.Remanente = t.TotalDisponible.Sub(t.TotalSalidas)
	return t
}

// Acumulado is the month-level aggregation of weekly records.
// DiezmoDeDiezmo and Gomer are sums of each week's rounded figure, each
// week computed with its own formulas snapshot.
type Acumulado struct {
	Semanas        int
	Diezmo         decimal.Decimal
	Ordinaria      decimal.Decimal
	Servicios      decimal.Decimal
	DiezmoDeDiezmo decimal.Decimal
	Gomer          decimal.Decimal
}

// Acumular folds the given weekly records. The caller selects the month.
func Acumular(registros []model.RegistroSemanal) Acumulado {
	a := Acumulado{
		Diezmo:         decimal.Zero,
		Ordinaria:      decimal.Zero,
		Servicios:      decimal.Zero,
		DiezmoDeDiezmo: decimal.Zero,
		Gomer:          decimal.Zero,
	}
	for _, r := range registros {
		diezmo := SumaCategoria(r.Ofrendas, model.CategoriaDiezmo)
		ordinaria := SumaCategoria(r.Ofrendas, model.CategoriaOrdinaria)
		a.Diezmo = a.Diezmo.Add(diezmo)
		a.Ordinaria = a.Ordinaria.Add(ordinaria)
		a.Servicios = a.Servicios.Add(Servicios(r.Ofrendas))

		semanal := diezmo.Add(ordinaria)
		dd := DiezmoDeDiezmo(semanal, r.Formulas)
		a.DiezmoDeDiezmo = a.DiezmoDeDiezmo.Add(dd)
		a.Gomer = a.Gomer.Add(GomerMinistro(semanal, dd))
		a.Semanas++
	}
	return a
}
