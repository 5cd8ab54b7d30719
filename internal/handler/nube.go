package handler

import (
	"net/http"

	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
)

type NubeHandler struct{ svc service.NubeService }

func NewNubeHandler(svc service.NubeService) *NubeHandler { return &NubeHandler{svc: svc} }

// ListarArchivos godoc
// @Summary      Archivos semanales en la nube
// @Description  Hasta 100 archivos, del más reciente al más antiguo.
// @Tags         nube
// @Produce      json
// @Success      200  {array}  dto.ArchivoNubeResponse
// @Failure      502  {object} apierror.APIError
// @Router       /v1/nube/semanas [get]
func (h *NubeHandler) ListarArchivos(c *gin.Context) {
	resp, err := h.svc.ListarArchivos(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cargar godoc
// @Summary      Cargar una semana desde la nube
// @Description  Sin sobrescribir, una semana local con la misma fecha produce 409.
// @Tags         nube
// @Accept       json
// @Produce      json
// @Param        body body     dto.CargarNubeRequest true "Archivo"
// @Success      200  {object} dto.CargarNubeResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      502  {object} apierror.APIError
// @Router       /v1/nube/semanas/cargar [post]
func (h *NubeHandler) Cargar(c *gin.Context) {
	var req dto.CargarNubeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cargar(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Subidas GET /v1/subidas
func (h *NubeHandler) Subidas(c *gin.Context) {
	resp, err := h.svc.Subidas(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
