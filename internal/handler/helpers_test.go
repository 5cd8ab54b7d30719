package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ofrendas/internal/apierror"
	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() { gin.SetMode(gin.TestMode) }

func responder(err error) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	responderError(c, err)
	return w, c
}

func TestResponderError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   int
		detail string
	}{
		{"validacion", service.ErrFechaIncompleta, http.StatusBadRequest, "Por favor, complete todos los campos de fecha"},
		{"validacion envuelta", fmt.Errorf("%w: x.txt", service.ErrNombreArchivoInvalido), http.StatusBadRequest, "Nombre de archivo no válido: x.txt"},
		{"no encontrado", service.ErrMiembroNoEncontrado, http.StatusNotFound, "Miembro no encontrado"},
		{"conflicto", service.ErrInformeExistente, http.StatusConflict, "Ya existe un informe para este mes"},
		{"remoto", &service.RemotoError{Op: "listar", Bucket: "b", Err: errors.New("failed to fetch")}, http.StatusBadGateway, apierror.MensajeConexion},
		{"interno", errors.New("disk full"), http.StatusInternalServerError, "Error interno del servidor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := responder(tc.err)
			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, tc.detail), w.Body.String())
		})
	}
}

func TestResponderError_InternoQuedaEnElContexto(t *testing.T) {
	boom := errors.New("disk full")
	_, c := responder(boom)
	assert.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors.Last().Err, boom)

	_, c = responder(service.ErrFechaInvalida)
	assert.Empty(t, c.Errors, "user errors are not logged as server errors")
}

func TestMensaje(t *testing.T) {
	assert.Equal(t, "Ñandú", mensaje(errors.New("ñandú")))
	assert.Equal(t, "", mensaje(errors.New("")))
}

func TestPeriodo(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?mes=3&anio=2025", nil)
	mes, anio, ok := periodo(c)
	assert.True(t, ok)
	assert.Equal(t, 3, mes)
	assert.Equal(t, 2025, anio)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?mes=marzo", nil)
	_, _, ok = periodo(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t,
		`attachment; filename="Mes-A_o-Iglesia.pdf"; filename*=UTF-8''Mes-A%C3%B1o-Iglesia.pdf`,
		contentDisposition("Mes-Año-Iglesia.pdf"))
	assert.Equal(t,
		`attachment; filename="02-Marzo-25_Central.xlsx"; filename*=UTF-8''02-Marzo-25_Central.xlsx`,
		contentDisposition("02-Marzo-25_Central.xlsx"))
	assert.Equal(t,
		`attachment; filename="a_b.pdf"; filename*=UTF-8''a%22b.pdf`,
		contentDisposition(`a"b.pdf`))
}

func TestEnviarArchivo(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	enviarArchivo(c, dto.ArchivoResponse{Nombre: "Marzo-2025-Iglesia Central.pdf", Datos: []byte("%PDF")}, tipoPDF)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tipoPDF, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename*=UTF-8''Marzo-2025-Iglesia%20Central.pdf`)
	assert.Equal(t, "%PDF", w.Body.String())
}
