package handler

import (
	"net/http"

	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
)

type ComisionadosHandler struct{ svc service.ComisionadoService }

func NewComisionadosHandler(svc service.ComisionadoService) *ComisionadosHandler {
	return &ComisionadosHandler{svc: svc}
}

// Listar GET /v1/comisionados
func (h *ComisionadosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/comisionados
func (h *ComisionadosHandler) Crear(c *gin.Context) {
	var req dto.ComisionadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /v1/comisionados/:id
func (h *ComisionadosHandler) Actualizar(c *gin.Context) {
	var req dto.ComisionadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/comisionados/:id
func (h *ComisionadosHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
