package handler

import (
	"net/http"

	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
)

// SemanasHandler serves the saved weeks.
type SemanasHandler struct{ svc service.RegistroService }

func NewSemanasHandler(svc service.RegistroService) *SemanasHandler {
	return &SemanasHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar semanas guardadas
// @Tags         semanas
// @Produce      json
// @Success      200  {array}  dto.RegistroResponse
// @Router       /v1/semanas [get]
func (h *SemanasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/semanas/:id
func (h *SemanasHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Editar una semana guardada
// @Description  Las fórmulas con que se creó la semana no cambian.
// @Tags         semanas
// @Accept       json
// @Produce      json
// @Param        id   path     string                        true "ID de la semana"
// @Param        body body     dto.ActualizarRegistroRequest true "Campos a cambiar"
// @Success      200  {object} dto.RegistroResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/semanas/{id} [put]
func (h *SemanasHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarRegistroRequest
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

// Eliminar DELETE /v1/semanas/:id
func (h *SemanasHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Resumen GET /v1/semanas/:id/resumen
func (h *SemanasHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excel godoc
// @Summary      Descargar el Excel de una semana
// @Tags         semanas
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path     string true "ID de la semana"
// @Success      200  {file}   file
// @Failure      404  {object} apierror.APIError
// @Router       /v1/semanas/{id}/excel [get]
func (h *SemanasHandler) Excel(c *gin.Context) {
	arch, err := h.svc.Exportar(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	enviarArchivo(c, arch, tipoXLSX)
}

// Subir godoc
// @Summary      Reintentar la subida a la nube
// @Tags         semanas
// @Produce      json
// @Param        id   path     string true "ID de la semana"
// @Success      200  {object} dto.SubidaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/semanas/{id}/subir [post]
func (h *SemanasHandler) Subir(c *gin.Context) {
	resp, err := h.svc.Subir(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
