package handler

import (
	"net/http"

	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
)

// AjustesHandler serves the formulas, church info and theme settings.
type AjustesHandler struct{ svc service.AjustesService }

func NewAjustesHandler(svc service.AjustesService) *AjustesHandler {
	return &AjustesHandler{svc: svc}
}

// Formulas GET /v1/formulas
func (h *AjustesHandler) Formulas(c *gin.Context) {
	resp, err := h.svc.Formulas(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GuardarFormulas godoc
// @Summary      Cambiar las fórmulas
// @Description  Solo afecta a las semanas creadas después del cambio.
// @Tags         ajustes
// @Accept       json
// @Produce      json
// @Param        body body     dto.FormulasRequest true "Fórmulas"
// @Success      200  {object} model.Formulas
// @Failure      400  {object} apierror.APIError
// @Router       /v1/formulas [put]
func (h *AjustesHandler) GuardarFormulas(c *gin.Context) {
	var req dto.FormulasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarFormulas(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Iglesia GET /v1/iglesia
func (h *AjustesHandler) Iglesia(c *gin.Context) {
	resp, err := h.svc.Iglesia(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GuardarIglesia PUT /v1/iglesia
func (h *AjustesHandler) GuardarIglesia(c *gin.Context) {
	var req dto.IglesiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarIglesia(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Tema GET /v1/tema
func (h *AjustesHandler) Tema(c *gin.Context) {
	t, err := h.svc.Tema(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TemaResponse{Tema: string(t)})
}

// GuardarTema PUT /v1/tema
func (h *AjustesHandler) GuardarTema(c *gin.Context) {
	var req dto.TemaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.GuardarTema(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TemaResponse{Tema: string(t)})
}
