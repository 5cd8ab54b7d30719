// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"fmt"
	"strings"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// ── Remote errors ─────────────────────────────────────────────────────────────

const MensajeConexion = "Falló la conexión con el servidor al intentar subir el archivo. " +
	"Esto puede ser un problema de CORS o de red. Verifique la configuración de CORS " +
	"en su panel de Supabase y su conexión a internet."

var señalesConexion = []string{
	"failed to fetch",
	"connection refused",
	"no such host",
	"i/o timeout",
	"circuit breaker is open",
	"context deadline exceeded",
}

var señalesBucket = []string{
	"bucket not found",
	"bucket does not exist",
}

// MensajeRemoto turns a remote gateway error into the message shown to the
// user. Matching is on the error text so it works across backends.
func MensajeRemoto(err error, bucket string) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	bajo := strings.ToLower(msg)
	for _, s := range señalesConexion {
		if strings.Contains(bajo, s) {
			return MensajeConexion
		}
	}
	for _, s := range señalesBucket {
		if strings.Contains(bajo, s) {
			return fmt.Sprintf("Error: El \"bucket\" (contenedor) de almacenamiento en la nube no fue encontrado. "+
				"Por favor, vaya a su panel de Supabase -> Storage y cree un nuevo bucket PÚBLICO con el nombre exacto: '%s'", bucket)
		}
	}
	return fmt.Sprintf("Error al subir a la nube: %s.", msg)
}
