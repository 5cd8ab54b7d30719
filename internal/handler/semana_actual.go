package handler

import (
	"net/http"

	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
)

// SemanaActualHandler serves the week being filled in.
type SemanaActualHandler struct{ svc service.RegistroService }

func NewSemanaActualHandler(svc service.RegistroService) *SemanaActualHandler {
	return &SemanaActualHandler{svc: svc}
}

// Obtener godoc
// @Summary      Semana en curso
// @Tags         semana-actual
// @Produce      json
// @Success      200  {object} dto.RegistroResponse
// @Success      204  "No hay semana en curso"
// @Router       /v1/semana-actual [get]
func (h *SemanaActualHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Actual(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	if resp == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary      Iniciar una semana
// @Description  Crea la semana en curso con las fórmulas vigentes. Una semana sin guardar se descarta.
// @Tags         semana-actual
// @Accept       json
// @Produce      json
// @Param        body body     dto.CrearRegistroRequest true "Fecha"
// @Success      201  {object} dto.RegistroResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/semana-actual [post]
func (h *SemanaActualHandler) Crear(c *gin.Context) {
	var req dto.CrearRegistroRequest
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

// Descartar DELETE /v1/semana-actual
func (h *SemanaActualHandler) Descartar(c *gin.Context) {
	h.svc.Descartar()
	c.Status(http.StatusNoContent)
}

// AgregarOfrenda godoc
// @Summary      Agregar ofrenda
// @Tags         semana-actual
// @Accept       json
// @Produce      json
// @Param        body body     dto.AgregarOfrendaRequest true "Ofrenda"
// @Success      201  {object} dto.RegistroResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/semana-actual/ofrendas [post]
func (h *SemanaActualHandler) AgregarOfrenda(c *gin.Context) {
	var req dto.AgregarOfrendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarOfrenda(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// QuitarOfrenda DELETE /v1/semana-actual/ofrendas/:id
func (h *SemanaActualHandler) QuitarOfrenda(c *gin.Context) {
	resp, err := h.svc.QuitarOfrenda(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen GET /v1/semana-actual/resumen
func (h *SemanaActualHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.ResumenActual(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Guardar godoc
// @Summary      Guardar la semana
// @Description  Guarda localmente y sube el Excel a la nube. Un fallo de subida no deshace el guardado.
// @Tags         semana-actual
// @Produce      json
// @Success      200  {object} dto.GuardarRegistroResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/semana-actual/guardar [post]
func (h *SemanaActualHandler) Guardar(c *gin.Context) {
	resp, err := h.svc.Guardar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
