package dto

import "github.com/shopspring/decimal"

type FormulasRequest struct {
	DiezmoPorcentaje decimal.Decimal `json:"diezmo_porcentaje" validate:"min=0,max=100"`
	UmbralRemanente  decimal.Decimal `json:"umbral_remanente"`
}

type IglesiaRequest struct {
	MinistroPredeterminado string `json:"ministro_predeterminado" validate:"max=120"`
	GradoMinistro          string `json:"grado_ministro"          validate:"max=60"`
	Distrito               string `json:"distrito"                validate:"max=60"`
	Departamento           string `json:"departamento"            validate:"max=60"`
	TelefonoMinistro       string `json:"telefono_ministro"       validate:"max=30"`
}

type TemaRequest struct {
	Tema string `json:"tema" validate:"required,oneof=light dark"`
}

type TemaResponse struct {
	Tema string `json:"tema"`
}
