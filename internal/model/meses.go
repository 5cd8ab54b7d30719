package model

import "strings"

// NombresMeses are the Spanish month names used in file names and reports.
var NombresMeses = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// NombreMes returns the Spanish name for month 1–12, or "" when out of range.
func NombreMes(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return NombresMeses[mes-1]
}

// NumeroMes is the inverse of NombreMes (case-insensitive). Returns 0 if unknown.
func NumeroMes(nombre string) int {
	for i, n := range NombresMeses {
		if strings.EqualFold(n, strings.TrimSpace(nombre)) {
			return i + 1
		}
	}
	return 0
}

// CategoriasIniciales seed a fresh installation.
var CategoriasIniciales = []string{"Agua", "Diezmo", "Luz", "Ordinaria", "Primicias"}

// Categories with a fixed role in the calculations.
const (
	CategoriaDiezmo    = "Diezmo"
	CategoriaOrdinaria = "Ordinaria"
	CategoriaLuz       = "Luz"
	CategoriaAgua      = "Agua"
)

// CategoriasServicios are the public-service collections reported together
// as "Pago de Servicios Públicos" in the monthly report.
var CategoriasServicios = []string{CategoriaLuz, CategoriaAgua}
