package model

import "github.com/shopspring/decimal"

// Formulas are the global parameters of the weekly close-out.
// DiezmoPorcentaje is a percentage (0–100); UmbralRemanente is in C$.
type Formulas struct {
	DiezmoPorcentaje decimal.Decimal `json:"diezmoPercentage"`
	UmbralRemanente  decimal.Decimal `json:"remanenteThreshold"`
}

// InfoIglesia holds the defaults pre-filled into new records and monthly reports.
type InfoIglesia struct {
	MinistroPredeterminado string `json:"defaultMinister"`
	GradoMinistro          string `json:"ministerGrade"`
	Distrito               string `json:"district"`
	Departamento           string `json:"department"`
	TelefonoMinistro       string `json:"ministerPhone"`
}

// Tema is the UI theme preference ("light" | "dark").
type Tema string

const (
	TemaClaro  Tema = "light"
	TemaOscuro Tema = "dark"
)
