package handler

import (
	"net/http"

	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{ svc service.AdminService }

func NewAdminHandler(svc service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

// Sincronizar godoc
// @Summary      Traer catálogos de la nube
// @Description  Reemplaza la copia local de miembros, categorías y comisionados.
// @Tags         admin
// @Produce      json
// @Success      200  {object} dto.SincronizarResponse
// @Failure      502  {object} apierror.APIError
// @Router       /v1/sincronizar [post]
func (h *AdminHandler) Sincronizar(c *gin.Context) {
	resp, err := h.svc.Sincronizar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Semilla godoc
// @Summary      Sembrar datos iniciales
// @Description  Inserta en la nube las categorías iniciales y los miembros configurados que falten. Se detiene en el primer error.
// @Tags         admin
// @Produce      json
// @Success      200  {object} dto.SemillaResponse
// @Failure      502  {object} apierror.APIError
// @Router       /v1/semilla [post]
func (h *AdminHandler) Semilla(c *gin.Context) {
	resp, err := h.svc.Semilla(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
