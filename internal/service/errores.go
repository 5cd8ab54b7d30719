package service

import "errors"

// Validation errors. Handlers answer 400 with the message as is.
var (
	ErrFechaIncompleta       = errors.New("por favor, complete todos los campos de fecha")
	ErrFechaInvalida         = errors.New("la fecha no es válida")
	ErrMontoInvalido         = errors.New("por favor, ingrese una cantidad válida")
	ErrMiembroRequerido      = errors.New("por favor, seleccione un miembro")
	ErrCategoriaInvalida     = errors.New("la categoría no existe")
	ErrSinRegistroActual     = errors.New("no hay una semana activa")
	ErrNombreMiembro         = errors.New("el nombre del miembro no puede estar vacío o ya existe")
	ErrNombreCategoria       = errors.New("la categoría no puede estar vacía o ya existe")
	ErrNombreComisionado     = errors.New("el nombre del comisionado no puede estar vacío")
	ErrPorcentajeInvalido    = errors.New("el porcentaje debe estar entre 0 y 100")
	ErrTemaInvalido          = errors.New("el tema debe ser 'light' o 'dark'")
	ErrPeriodoInvalido       = errors.New("mes o año inválido")
	ErrNombreArchivoInvalido = errors.New("nombre de archivo no válido")
	ErrArchivoIlegible       = errors.New("el archivo no es un reporte semanal válido")
)

// Lookup errors (404).
var (
	ErrRegistroNoEncontrado    = errors.New("semana no encontrada")
	ErrInformeNoEncontrado     = errors.New("informe no encontrado")
	ErrMiembroNoEncontrado     = errors.New("miembro no encontrado")
	ErrCategoriaNoEncontrada   = errors.New("categoría no encontrada")
	ErrComisionadoNoEncontrado = errors.New("comisionado no encontrado")
	ErrArchivoNoEncontrado     = errors.New("no se pudo descargar el archivo")
)

// Conflicts (409); the caller may retry with sobrescribir.
var (
	ErrInformeExistente = errors.New("ya existe un informe para este mes")
	ErrFechaDuplicada   = errors.New("ya existe un registro local para esa fecha")
)

// ErrSinRegistros is returned by CargarDatos; see SinRegistrosError.
var ErrSinRegistros = errors.New("sin registros")

// EsValidacion reports whether err is a user-input error.
func EsValidacion(err error) bool {
	for _, e := range []error{
		ErrFechaIncompleta, ErrFechaInvalida, ErrMontoInvalido, ErrMiembroRequerido,
		ErrCategoriaInvalida, ErrSinRegistroActual, ErrNombreMiembro, ErrNombreCategoria,
		ErrNombreComisionado, ErrPorcentajeInvalido, ErrTemaInvalido, ErrPeriodoInvalido,
		ErrNombreArchivoInvalido, ErrArchivoIlegible,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// EsNoEncontrado reports whether err means the addressed entity is missing.
func EsNoEncontrado(err error) bool {
	for _, e := range []error{
		ErrRegistroNoEncontrado, ErrInformeNoEncontrado, ErrMiembroNoEncontrado,
		ErrCategoriaNoEncontrada, ErrComisionadoNoEncontrado, ErrArchivoNoEncontrado,
		ErrSinRegistros,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// EsConflicto reports whether err asks the caller to confirm an overwrite.
func EsConflicto(err error) bool {
	return errors.Is(err, ErrInformeExistente) || errors.Is(err, ErrFechaDuplicada)
}
