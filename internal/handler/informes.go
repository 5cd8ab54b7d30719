package handler

import (
	"net/http"

	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
)

type InformesHandler struct{ svc service.InformeService }

func NewInformesHandler(svc service.InformeService) *InformesHandler {
	return &InformesHandler{svc: svc}
}

// CargarDatos godoc
// @Summary      Cargar datos del mes al informe
// @Description  Rellena los campos agregados desde las semanas guardadas; el resto del formulario se conserva.
// @Tags         informes
// @Accept       json
// @Produce      json
// @Param        body body     dto.CargarDatosRequest true "Mes, año y formulario actual"
// @Success      200  {object} dto.FormularioResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/informes/cargar-datos [post]
func (h *InformesHandler) CargarDatos(c *gin.Context) {
	var req dto.CargarDatosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CargarDatos(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Calcular POST /v1/informes/calcular
func (h *InformesHandler) Calcular(c *gin.Context) {
	var req dto.FormularioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Calcular(req.Formulario))
}

// PDF godoc
// @Summary      Generar el PDF del informe
// @Tags         informes
// @Accept       json
// @Produce      application/pdf
// @Param        body body     dto.FormularioRequest true "Formulario"
// @Success      200  {file}   file
// @Router       /v1/informes/pdf [post]
func (h *InformesHandler) PDF(c *gin.Context) {
	var req dto.FormularioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	arch, err := h.svc.GenerarPDF(c.Request.Context(), req.Formulario)
	if err != nil {
		responderError(c, err)
		return
	}
	enviarArchivo(c, arch, tipoPDF)
}

// Listar GET /v1/informes
func (h *InformesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Guardar godoc
// @Summary      Guardar borrador del informe
// @Description  Un informe existente del mismo mes solo se reemplaza con sobrescribir=true.
// @Tags         informes
// @Accept       json
// @Produce      json
// @Param        body body     dto.GuardarInformeRequest true "Informe"
// @Success      201  {object} dto.InformeResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/informes [post]
func (h *InformesHandler) Guardar(c *gin.Context) {
	var req dto.GuardarInformeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener GET /v1/informes/:id
func (h *InformesHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/informes/:id
func (h *InformesHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResumenMensual godoc
// @Summary      Resumen mensual por categoría y semana
// @Tags         informes
// @Produce      json
// @Param        mes  query    int true "Mes (1-12)"
// @Param        anio query    int true "Año"
// @Success      200  {object} dto.ResumenMensualResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/resumen-mensual [get]
func (h *InformesHandler) ResumenMensual(c *gin.Context) {
	mes, anio, ok := periodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.ResumenMensual(c.Request.Context(), mes, anio)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
