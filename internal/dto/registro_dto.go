package dto

import (
	"ofrendas/internal/calculo"
	"ofrendas/internal/model"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CrearRegistroRequest starts a new week. Zero date fields are reported by
// the service as an incomplete date.
type CrearRegistroRequest struct {
	Dia  int `json:"dia"  validate:"min=0,max=31"`
	Mes  int `json:"mes"  validate:"min=0,max=12"`
	Anio int `json:"anio" validate:"min=0,max=2100"`
}

type AgregarOfrendaRequest struct {
	MiembroID string          `json:"miembro_id" validate:"required"`
	Categoria string          `json:"categoria"  validate:"required"`
	Monto     decimal.Decimal `json:"monto"      validate:"required,gt=0"`
}

type OfrendaRequest struct {
	ID            string          `json:"id"`
	MiembroID     string          `json:"miembro_id"     validate:"required"`
	MiembroNombre string          `json:"miembro_nombre"`
	Categoria     string          `json:"categoria"      validate:"required"`
	Monto         decimal.Decimal `json:"monto"          validate:"required,gt=0"`
}

// ActualizarRegistroRequest edits a saved week; nil fields are left as is.
type ActualizarRegistroRequest struct {
	Dia      *int              `json:"dia"      validate:"omitempty,min=1,max=31"`
	Mes      *int              `json:"mes"      validate:"omitempty,min=1,max=12"`
	Anio     *int              `json:"anio"     validate:"omitempty,min=2000,max=2100"`
	Ministro *string           `json:"ministro"`
	Ofrendas *[]OfrendaRequest `json:"ofrendas" validate:"omitempty,dive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// RegistroResponse is a week together with its close-out figures.
type RegistroResponse struct {
	model.RegistroSemanal
	Resultado calculo.Resultado `json:"resultado"`
}

type SubidaResponse struct {
	Archivo string `json:"archivo"`
	Bucket  string `json:"bucket"`
	URL     string `json:"url,omitempty"`
	Exitosa bool   `json:"exitosa"`
	Mensaje string `json:"mensaje"`
}

// GuardarRegistroResponse reports both steps of a save: the local commit
// always happened; the upload may have failed.
type GuardarRegistroResponse struct {
	Registro RegistroResponse `json:"registro"`
	Subida   SubidaResponse   `json:"subida"`
}

type ArchivoResponse struct {
	Nombre string
	Datos  []byte
}
