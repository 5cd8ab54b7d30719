package handler

import (
	"net/http"

	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
)

type MiembrosHandler struct{ svc service.MiembroService }

func NewMiembrosHandler(svc service.MiembroService) *MiembrosHandler {
	return &MiembrosHandler{svc: svc}
}

// Listar GET /v1/miembros
func (h *MiembrosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Agregar miembro
// @Description  Se guarda localmente; si la nube falla la respuesta trae una advertencia.
// @Tags         miembros
// @Accept       json
// @Produce      json
// @Param        body body     dto.CrearMiembroRequest true "Miembro"
// @Success      201  {object} dto.MiembroResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/miembros [post]
func (h *MiembrosHandler) Crear(c *gin.Context) {
	var req dto.CrearMiembroRequest
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

// Actualizar PUT /v1/miembros/:id
func (h *MiembrosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarMiembroRequest
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

// Eliminar DELETE /v1/miembros/:id
func (h *MiembrosHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
