// Package calculo derives the weekly close-out figures and the monthly
// report totals. Every function here is pure: same inputs, same outputs.
package calculo

import (
	"ofrendas/internal/model"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// Subtotal is the sum of a category's donations.
type Subtotal struct {
	Categoria string          `json:"categoria"`
	Monto     decimal.Decimal `json:"monto"`
}

// Resultado holds the figures reported for one weekly record.
// DiezmoDeDiezmo, Remanente and GomerMinistro are whole C$.
type Resultado struct {
	Subtotales     []Subtotal      `json:"subtotales"`
	Total          decimal.Decimal `json:"total"`
	DiezmoDeDiezmo decimal.Decimal `json:"diezmo_de_diezmo"`
	Remanente      decimal.Decimal `json:"remanente"`
	GomerMinistro  decimal.Decimal `json:"gomer_ministro"`
}

// Redondear rounds to whole units, ties away from zero.
func Redondear(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Subtotales buckets donations by category, in the order of categorias.
// Categories without donations yield zero; donations whose category is not
// in the list are left out.
func Subtotales(ofrendas []model.Ofrenda, categorias []string) []Subtotal {
	out := make([]Subtotal, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, Subtotal{Categoria: c, Monto: SumaCategoria(ofrendas, c)})
	}
	return out
}

// SumaCategoria sums the donations recorded under categoria.
func SumaCategoria(ofrendas []model.Ofrenda, categoria string) decimal.Decimal {
	total := decimal.Zero
	for _, o := range ofrendas {
		if o.Categoria == categoria {
			total = total.Add(o.Monto)
		}
	}
	return total
}

// Total is Diezmo + Ordinaria. It reads the donations directly so the two
// feeding categories count even after being removed from the category set.
func Total(ofrendas []model.Ofrenda) decimal.Decimal {
	return SumaCategoria(ofrendas, model.CategoriaDiezmo).Add(SumaCategoria(ofrendas, model.CategoriaOrdinaria))
}

// DiezmoDeDiezmo = round(total * pct / 100).
func DiezmoDeDiezmo(total decimal.Decimal, f model.Formulas) decimal.Decimal {
	return Redondear(total.Mul(f.DiezmoPorcentaje).Div(cien))
}

// Remanente is round(total - umbral) when total is strictly above the
// threshold, zero otherwise.
func Remanente(total decimal.Decimal, f model.Formulas) decimal.Decimal {
	if total.GreaterThan(f.UmbralRemanente) {
		return Redondear(total.Sub(f.UmbralRemanente))
	}
	return decimal.Zero
}

// GomerMinistro = round(total - diezmoDeDiezmo).
func GomerMinistro(total, diezmoDeDiezmo decimal.Decimal) decimal.Decimal {
	return Redondear(total.Sub(diezmoDeDiezmo))
}

// Calcular runs the full weekly close-out over a donation list.
func Calcular(ofrendas []model.Ofrenda, f model.Formulas, categorias []string) Resultado {
	total := Total(ofrendas)
	dd := DiezmoDeDiezmo(total, f)
	return Resultado{
		Subtotales:     Subtotales(ofrendas, categorias),
		Total:          total,
		DiezmoDeDiezmo: dd,
		Remanente:      Remanente(total, f),
		GomerMinistro:  GomerMinistro(total, dd),
	}
}

// CalcularRegistro applies Calcular with the record's own formulas snapshot.
func CalcularRegistro(r model.RegistroSemanal, categorias []string) Resultado {
	return Calcular(r.Ofrendas, r.Formulas, categorias)
}

// Servicios sums the public-service collections (Luz + Agua).
func Servicios(ofrendas []model.Ofrenda) decimal.Decimal {
	total := decimal.Zero
	for _, c := range model.CategoriasServicios {
		total = total.Add(SumaCategoria(ofrendas, c))
	}
	return total
}
