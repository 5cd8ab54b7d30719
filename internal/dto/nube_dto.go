package dto

import "time"

type CargarNubeRequest struct {
	Archivo      string `json:"archivo"      validate:"required"`
	Sobrescribir bool   `json:"sobrescribir"`
}

type ArchivoNubeResponse struct {
	Nombre   string    `json:"nombre"`
	CreadoEn time.Time `json:"creado_en"`
	URL      string    `json:"url"`
}

type CargarNubeResponse struct {
	Registro    RegistroResponse `json:"registro"`
	Reemplazado bool             `json:"reemplazado"`
	Mensaje     string           `json:"mensaje"`
}

type SemillaResponse struct {
	Insertados  int    `json:"insertados"`
	Advertencia string `json:"advertencia,omitempty"`
}

type SincronizarResponse struct {
	Miembros     int `json:"miembros"`
	Categorias   int `json:"categorias"`
	Comisionados int `json:"comisionados"`
}
