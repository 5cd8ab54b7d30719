package dto

import (
	"time"

	"ofrendas/internal/calculo"
	"ofrendas/internal/model"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CargarDatosRequest struct {
	Mes        int                     `json:"mes"        validate:"required,min=1,max=12"`
	Anio       int                     `json:"anio"       validate:"required,min=2000,max=2100"`
	Formulario model.FormularioInforme `json:"formulario"`
}

type FormularioRequest struct {
	Formulario model.FormularioInforme `json:"formulario"`
}

type GuardarInformeRequest struct {
	Mes          int                     `json:"mes"          validate:"required,min=1,max=12"`
	Anio         int                     `json:"anio"         validate:"required,min=2000,max=2100"`
	Formulario   model.FormularioInforme `json:"formulario"`
	Sobrescribir bool                    `json:"sobrescribir"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type FormularioResponse struct {
	Formulario model.FormularioInforme `json:"formulario"`
	Totales    calculo.TotalesInforme  `json:"totales"`
	Semanas    int                     `json:"semanas,omitempty"`
	Mensaje    string                  `json:"mensaje,omitempty"`
}

type InformeResponse struct {
	ID         string                  `json:"id"`
	Mes        int                     `json:"mes"`
	Anio       int                     `json:"anio"`
	Formulario model.FormularioInforme `json:"formulario"`
	Totales    calculo.TotalesInforme  `json:"totales"`
	GuardadoEn time.Time               `json:"guardado_en"`
}

type SemanaResumen struct {
	RegistroID string            `json:"registro_id"`
	Dia        int               `json:"dia"`
	Ministro   string            `json:"ministro"`
	Resultado  calculo.Resultado `json:"resultado"`
}

// ResumenMensualResponse breaks a month down by category and by week.
type ResumenMensualResponse struct {
	Mes            int                `json:"mes"`
	Anio           int                `json:"anio"`
	Categorias     []calculo.Subtotal `json:"categorias"`
	Semanas        []SemanaResumen    `json:"semanas"`
	Total          decimal.Decimal    `json:"total"`
	DiezmoDeDiezmo decimal.Decimal    `json:"diezmo_de_diezmo"`
	Gomer          decimal.Decimal    `json:"gomer"`
	Servicios      decimal.Decimal    `json:"servicios"`
}
