package model

import "github.com/shopspring/decimal"

// Ofrenda is a single donation inside a weekly record. MiembroNombre is a
// snapshot taken when the donation was added; renaming the member later
// does not change it.
type Ofrenda struct {
	ID            string          `json:"id"`
	MiembroID     string          `json:"memberId"`
	MiembroNombre string          `json:"memberName"`
	Categoria     string          `json:"category"`
	Monto         decimal.Decimal `json:"amount"`
}

// RegistroSemanal is one week's offering collection. Formulas is the
// snapshot in force when the record was created.
type RegistroSemanal struct {
	ID       string    `json:"id"`
	Dia      int       `json:"day"`
	Mes      int       `json:"month"`
	Anio     int       `json:"year"`
	Ministro string    `json:"minister"`
	Ofrendas []Ofrenda `json:"donations"`
	Formulas Formulas  `json:"formulas"`
}

// MismaFecha reports whether both records are dated on the same day.
func (r RegistroSemanal) MismaFecha(o RegistroSemanal) bool {
	return r.Dia == o.Dia && r.Mes == o.Mes && r.Anio == o.Anio
}

// Antes orders records chronologically.
func (r RegistroSemanal) Antes(o RegistroSemanal) bool {
	if r.Anio != o.Anio {
		return r.Anio < o.Anio
	}
	if r.Mes != o.Mes {
		return r.Mes < o.Mes
	}
	return r.Dia < o.Dia
}
