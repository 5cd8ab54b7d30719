package infra

// xlsx.go: weekly workbook export and import using excelize.
// The workbook has two sheets:
//   - "Resumen": date, minister, per-category subtotals and the close-out figures
//   - "Detalle de Ofrendas": one row per donation (Miembro, Categoría, Monto)
//
// Import only reads the detail sheet; the date comes from the file name.

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ofrendas/internal/calculo"
	"ofrendas/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	HojaResumen = "Resumen"
	HojaDetalle = "Detalle de Ofrendas"

	iglesiaPorDefecto = "La_Empresa"
)

var ErrNombreArchivo = errors.New("nombre de archivo no válido para extraer fecha")

// NombreArchivoSemanal builds "{dd}-{Mes}-{yy}_{Iglesia}.xlsx".
func NombreArchivoSemanal(r model.RegistroSemanal, iglesia string) string {
	iglesia = strings.TrimSpace(iglesia)
	if iglesia == "" {
		iglesia = iglesiaPorDefecto
	}
	return fmt.Sprintf("%02d-%s-%02d_%s.xlsx",
		r.Dia, model.NombreMes(r.Mes), r.Anio%100, strings.ReplaceAll(iglesia, " ", "_"))
}

// ParseNombreSemanal extracts the record date from a weekly workbook name.
func ParseNombreSemanal(nombre string) (dia, mes, anio int, err error) {
	partes := strings.Split(strings.Split(nombre, "_")[0], "-")
	if len(partes) < 3 {
		return 0, 0, 0, ErrNombreArchivo
	}
	dia, errDia := strconv.Atoi(strings.TrimSpace(partes[0]))
	mes = model.NumeroMes(partes[1])
	yy, errAnio := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(partes[2], ".xlsx")))
	if errDia != nil || errAnio != nil || dia < 1 || dia > 31 || mes == 0 {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrNombreArchivo, nombre)
	}
	return dia, mes, 2000 + yy, nil
}

// ExportarSemanal renders the weekly workbook for r. Subtotals follow the
// order of categorias; the close-out uses r's own formulas snapshot.
func ExportarSemanal(r model.RegistroSemanal, categorias []string, iglesia string) ([]byte, string, error) {
	res := calculo.CalcularRegistro(r, categorias)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", HojaResumen); err != nil {
		return nil, "", fmt.Errorf("xlsx: %w", err)
	}

	filas := [][]interface{}{
		{"Resumen Semanal"},
		nil,
		{"Fecha:", fmt.Sprintf("%d/%d/%d", r.Dia, r.Mes, r.Anio)},
		{"Ministro:", r.Ministro},
		nil,
		{"Concepto", "Monto (C$)"},
	}
	for _, s := range res.Subtotales {
		filas = append(filas, []interface{}{s.Categoria, numero(s.Monto)})
	}
	filas = append(filas,
		nil,
		[]interface{}{"Cálculos Finales", ""},
		[]interface{}{"TOTAL (Diezmo + Ordinaria)", numero(res.Total)},
		[]interface{}{fmt.Sprintf("Diezmo de Diezmo (%s%%)", r.Formulas.DiezmoPorcentaje), numero(res.DiezmoDeDiezmo)},
		[]interface{}{fmt.Sprintf("Remanente (Umbral C$ %s)", r.Formulas.UmbralRemanente), numero(res.Remanente)},
		[]interface{}{"Gomer del Ministro", numero(res.GomerMinistro)},
	)
	if err := escribirFilas(f, HojaResumen, filas); err != nil {
		return nil, "", err
	}

	if _, err := f.NewSheet(HojaDetalle); err != nil {
		return nil, "", fmt.Errorf("xlsx: %w", err)
	}
	detalle := [][]interface{}{{"Miembro", "Categoría", "Monto"}}
	for _, o := range r.Ofrendas {
		detalle = append(detalle, []interface{}{o.MiembroNombre, o.Categoria, numero(o.Monto)})
	}
	if err := escribirFilas(f, HojaDetalle, detalle); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("xlsx: write: %w", err)
	}
	return buf.Bytes(), NombreArchivoSemanal(r, iglesia), nil
}

func escribirFilas(f *excelize.File, hoja string, filas [][]interface{}) error {
	for i, fila := range filas {
		if len(fila) == 0 {
			continue
		}
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return fmt.Errorf("xlsx: %s row %d: %w", hoja, i+1, err)
		}
	}
	return nil
}

// numero writes whole amounts as integers so the cell reads "1500", not "1500.0".
func numero(d decimal.Decimal) interface{} {
	if d.IsInteger() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}

// LeerDetalleOfrendas reads the donations back from a weekly workbook.
// Every donation gets a fresh id; MiembroID is left for the caller to
// resolve from the name. Blank rows are skipped.
func LeerDetalleOfrendas(data []byte) ([]model.Ofrenda, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xlsx: open: %w", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(HojaDetalle); idx < 0 {
		return nil, fmt.Errorf("xlsx: la hoja '%s' no se encontró en el archivo", HojaDetalle)
	}
	filas, err := f.GetRows(HojaDetalle, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	if len(filas) == 0 {
		return []model.Ofrenda{}, nil
	}

	col := columnas(filas[0])
	ofrendas := make([]model.Ofrenda, 0, len(filas)-1)
	for i, fila := range filas[1:] {
		nombre := celda(fila, col["Miembro"])
		categoria := celda(fila, col["Categoría"])
		montoTxt := celda(fila, col["Monto"])
		if nombre == "" && categoria == "" && montoTxt == "" {
			continue
		}
		monto, err := decimal.NewFromString(montoTxt)
		if err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: monto %q inválido", i+2, montoTxt)
		}
		ofrendas = append(ofrendas, model.Ofrenda{
			ID:            uuid.NewString(),
			MiembroNombre: nombre,
			Categoria:     categoria,
			Monto:         monto,
		})
	}
	return ofrendas, nil
}

// columnas maps header names to indexes, falling back to the export order.
func columnas(cabecera []string) map[string]int {
	col := map[string]int{"Miembro": 0, "Categoría": 1, "Monto": 2}
	for i, h := range cabecera {
		if _, ok := col[strings.TrimSpace(h)]; ok {
			col[strings.TrimSpace(h)] = i
		}
	}
	return col
}

func celda(fila []string, i int) string {
	if i >= len(fila) {
		return ""
	}
	return strings.TrimSpace(fila[i])
}
