package dto

import "ofrendas/internal/model"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearMiembroRequest struct {
	Nombre   string `json:"nombre"    validate:"required,max=100"`
	IsActive *bool  `json:"is_active"`
}

type ActualizarMiembroRequest struct {
	Nombre   *string `json:"nombre"    validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,max=60"`
}

type ComisionadoRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
	Cargo  string `json:"cargo"  validate:"max=100"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────
// Advertencia carries a remote failure after a successful local change.

type MiembroResponse struct {
	model.Miembro
	Advertencia string `json:"advertencia,omitempty"`
}

type CategoriaResponse struct {
	model.Categoria
	Advertencia string `json:"advertencia,omitempty"`
}

type ComisionadoResponse struct {
	model.Comisionado
	Advertencia string `json:"advertencia,omitempty"`
}

type EliminarResponse struct {
	Eliminado   bool   `json:"eliminado"`
	Advertencia string `json:"advertencia,omitempty"`
}
