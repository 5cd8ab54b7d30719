package handler

import (
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"ofrendas/internal/apierror"
	"ofrendas/internal/dto"
	"ofrendas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// decimal.Decimal validates as a float so that gt=0 and min/max work on amounts.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// bindAndValidate binds the JSON body and runs the validator tags.
// On failure it writes the response and returns false.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return false
		}
		fields := make(map[string]string, len(ves))
		for _, fe := range ves {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// responderError maps a service error onto its HTTP status.
func responderError(c *gin.Context, err error) {
	var remoto *service.RemotoError
	switch {
	case errors.As(err, &remoto):
		c.JSON(http.StatusBadGateway, apierror.New(remoto.Mensaje()))
	case service.EsValidacion(err):
		c.JSON(http.StatusBadRequest, apierror.New(mensaje(err)))
	case service.EsNoEncontrado(err):
		c.JSON(http.StatusNotFound, apierror.New(mensaje(err)))
	case service.EsConflicto(err):
		c.JSON(http.StatusConflict, apierror.New(mensaje(err)))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// mensaje capitalizes an error text for display.
func mensaje(err error) string {
	s := err.Error()
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// enviarArchivo answers with a file download.
func enviarArchivo(c *gin.Context, a dto.ArchivoResponse, contentType string) {
	c.Header("Content-Disposition", contentDisposition(a.Nombre))
	c.Data(http.StatusOK, contentType, a.Datos)
}

// contentDisposition carries the name twice: an ASCII filename for old
// clients and the exact UTF-8 name in filename* (RFC 6266).
func contentDisposition(nombre string) string {
	ascii := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, nombre)
	return `attachment; filename="` + ascii + `"; filename*=UTF-8''` + url.PathEscape(nombre)
}

// periodo reads the mes and anio query parameters.
func periodo(c *gin.Context) (int, int, bool) {
	mes, errMes := strconv.Atoi(c.Query("mes"))
	anio, errAnio := strconv.Atoi(c.Query("anio"))
	if errMes != nil || errAnio != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Los parámetros mes y anio son obligatorios"))
		return 0, 0, false
	}
	return mes, anio, true
}

const (
	tipoXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	tipoPDF  = "application/pdf"
)
