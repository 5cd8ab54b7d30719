package infra

// pdf.go: monthly financial report rendered with go-pdf/fpdf.
// A4 portrait, 10mm margins:
//   - letterhead
//   - DATOS DE ESTE INFORME
//   - ENTRADAS (INGRESOS) | SALIDAS (EGRESOS)
//   - RESUMEN Y CIERRE | SALDO DEL REMANENTE DISTRIBUIDO A:
//   - signature block
//
// The document is rendered into memory; nothing is returned on error.

import (
	"bytes"
	"fmt"
	"strings"

	"ofrendas/internal/calculo"
	"ofrendas/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	margenPDF   = 10.0
	altoFila    = 5.0
	fuentePDF   = "Helvetica"
	espacioResu = 65.0 // minimum room left before the summary tables
	espacioFirm = 55.0 // minimum room left before the signatures
)

// FormatoMoneda renders "C$ 1,234.56".
func FormatoMoneda(d decimal.Decimal) string {
	return "C$ " + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// NombreArchivoInforme builds "{Mes}-{Año}-{Iglesia}.pdf".
func NombreArchivoInforme(f model.FormularioInforme) string {
	return fmt.Sprintf("%s-%s-%s.pdf",
		oDefecto(f.MesReporte, "Mes"), oDefecto(f.AnoReporte, "Año"), oDefecto(f.NombreIglesia, "Iglesia"))
}

func oDefecto(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

type filaPDF struct {
	etiqueta  string
	valor     string
	subtitulo bool
	negrita   bool
	resaltada bool
}

type informePDF struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	pageW  float64
	pageH  float64
	anchoM float64 // width of a half-page table
}

// GenerarInformePDF renders the monthly report for form f with totals t.
func GenerarInformePDF(f model.FormularioInforme, t calculo.TotalesInforme) ([]byte, string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margenPDF, margenPDF, margenPDF)
	pdf.SetAutoPageBreak(false, margenPDF)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	doc := &informePDF{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		pageW:  pageW,
		pageH:  pageH,
		anchoM: pageW/2 - margenPDF - 1,
	}

	y := doc.membrete(margenPDF)
	y = doc.datosGenerales(y, f) + 3

	ingresos := doc.tabla(margenPDF, y, doc.anchoM, "ENTRADAS (INGRESOS)", filasIngresos(f))
	egresos := doc.tabla(pageW/2+1, y, doc.anchoM, "SALIDAS (EGRESOS)", filasEgresos(f, t))
	y = max(ingresos, egresos) + 3

	if y > pageH-espacioResu {
		pdf.AddPage()
		y = margenPDF
	}
	resumen := doc.tabla(margenPDF, y, doc.anchoM, "RESUMEN Y CIERRE", filasResumen(t))
	distribucion := doc.tabla(pageW/2+1, y, doc.anchoM, "SALDO DEL REMANENTE DISTRIBUIDO A:", filasLineas(f.LineasDistribucion()))
	y = max(resumen, distribucion) + 10

	if y > pageH-espacioFirm {
		pdf.AddPage()
		y = margenPDF
	}
	doc.firmas(y, f)

	if err := pdf.Error(); err != nil {
		return nil, "", fmt.Errorf("pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("pdf: write: %w", err)
	}
	return buf.Bytes(), NombreArchivoInforme(f), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

func (d *informePDF) centrado(y float64, estilo string, tam float64, texto string) {
	d.pdf.SetFont(fuentePDF, estilo, tam)
	d.pdf.SetXY(margenPDF, y)
	d.pdf.CellFormat(d.pageW-2*margenPDF, 5, d.tr(texto), "", 0, "C", false, 0, "")
}

func (d *informePDF) membrete(y float64) float64 {
	d.centrado(y+2, "B", 12, "IGLESIA DEL DIOS VIVO COLUMNA Y APOYO DE LA VERDAD")
	d.centrado(y+7, "", 11, "La Luz del Mundo")
	d.centrado(y+13, "", 10, "MINISTERIO DE ADMINISTRACIÓN FINANCIERA")
	d.centrado(y+19, "B", 10, "INFORMACIÓN FINANCIERA MENSUAL")
	d.centrado(y+24, "", 10, "Jurisdicción Nicaragua, C.A.")
	return y + 35
}

func (d *informePDF) datosGenerales(y float64, f model.FormularioInforme) float64 {
	p := d.pdf
	ancho := d.pageW - 2*margenPDF
	cols := []float64{ancho * 0.22, ancho * 0.28, ancho * 0.22, ancho * 0.28}
	const alto = 6.0

	p.SetXY(margenPDF, y)
	p.SetFont(fuentePDF, "B", 8)
	p.SetFillColor(240, 240, 240)
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.1)
	p.CellFormat(ancho, alto, d.tr("DATOS DE ESTE INFORME"), "1", 1, "C", true, 0, "")

	filas := [][4]string{
		{"DEL MES DE:", f.MesReporte, "DEL AÑO:", f.AnoReporte},
		{"CLAVE IGLESIA:", f.ClaveIglesia, "NOMBRE IGLESIA:", f.NombreIglesia},
		{"DISTRITO:", f.Distrito, "DEPARTAMENTO:", f.Departamento},
		{"NOMBRE MINISTRO:", f.NombreMinistro, "GRADO:", f.GradoMinistro},
		{"TELÉFONO:", f.TelMinistro, "MIEMBROS ACTIVOS:", f.MiembrosActivos},
	}
	for _, fila := range filas {
		p.SetX(margenPDF)
		for i, texto := range fila {
			estilo := ""
			if i%2 == 0 {
				estilo = "B"
			}
			p.SetFont(fuentePDF, estilo, 9)
			p.CellFormat(cols[i], alto, d.tr(texto), "1", 0, "L", false, 0, "")
		}
		p.Ln(alto)
	}
	return p.GetY()
}

// tabla draws a two-column table (label | amount) at (x, y) and returns
// the y where it ends.
func (d *informePDF) tabla(x, y, ancho float64, titulo string, filas []filaPDF) float64 {
	p := d.pdf
	colEtiqueta := ancho * 0.65
	colValor := ancho - colEtiqueta

	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.1)
	p.SetTextColor(51, 51, 51)
	p.SetFillColor(240, 240, 240)
	p.SetFont(fuentePDF, "B", 8)
	p.SetXY(x, y)
	p.CellFormat(ancho, altoFila+1, d.tr(titulo), "1", 0, "C", true, 0, "")
	y += altoFila + 1
	p.SetTextColor(0, 0, 0)

	for _, f := range filas {
		estilo := ""
		if f.subtitulo || f.negrita || f.resaltada {
			estilo = "B"
		}
		relleno := f.resaltada
		if relleno {
			p.SetFillColor(224, 231, 255)
		}
		p.SetFont(fuentePDF, estilo, 8)
		p.SetXY(x, y)
		p.CellFormat(colEtiqueta, altoFila, d.tr(f.etiqueta), "1", 0, "L", relleno, 0, "")
		p.CellFormat(colValor, altoFila, d.tr(f.valor), "1", 0, "R", relleno, 0, "")
		y += altoFila
	}
	return y
}

func (d *informePDF) firmas(y float64, f model.FormularioInforme) {
	p := d.pdf
	ancho := (d.pageW - 2*margenPDF) / 3
	linea := "_________________________"

	p.SetFont(fuentePDF, "B", 9)
	p.SetXY(margenPDF, y)
	p.CellFormat(ancho*3, altoFila, d.tr("Comisión Local de Finanzas:"), "", 1, "C", false, 0, "")

	p.SetFont(fuentePDF, "", 9)
	p.SetXY(margenPDF, p.GetY()+8)
	for i := 0; i < 3; i++ {
		p.CellFormat(ancho, altoFila, linea, "", 0, "C", false, 0, "")
	}
	p.Ln(altoFila)
	nombres := []string{
		oDefecto(f.ComisionNombre1, "Firma 1"),
		oDefecto(f.ComisionNombre2, "Firma 2"),
		oDefecto(f.ComisionNombre3, "Firma 3"),
	}
	p.SetX(margenPDF)
	for _, n := range nombres {
		p.CellFormat(ancho, altoFila, d.tr(n), "", 0, "C", false, 0, "")
	}

	p.SetXY(margenPDF, p.GetY()+altoFila+16)
	p.CellFormat(ancho, altoFila, linea, "", 0, "C", false, 0, "")
	p.CellFormat(ancho, altoFila, linea, "", 1, "C", false, 0, "")
	p.SetX(margenPDF)
	p.CellFormat(ancho, altoFila, d.tr("Firma Ministro: "+f.NombreMinistro), "", 0, "C", false, 0, "")
	p.CellFormat(ancho, altoFila, d.tr("Firma Tesorero(a) Local"), "", 0, "C", false, 0, "")
}

// ── Rows ──────────────────────────────────────────────────────────────────────

func subtitulo(texto string) filaPDF { return filaPDF{etiqueta: texto, subtitulo: true} }

func filasLineas(lineas []model.Linea) []filaPDF {
	out := make([]filaPDF, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, filaPDF{etiqueta: l.Etiqueta, valor: FormatoMoneda(model.Numero(l.Valor))})
	}
	return out
}

func filasIngresos(f model.FormularioInforme) []filaPDF {
	var filas []filaPDF
	filas = append(filas, subtitulo("Ingresos por Ofrendas"))
	filas = append(filas, filasLineas(f.IngresosOfrendas())...)
	filas = append(filas, subtitulo("Ingresos por Colectas Especiales"))
	filas = append(filas, filasLineas(f.IngresosEspeciales())...)
	filas = append(filas, subtitulo("Ingresos por Colectas Locales"))
	filas = append(filas, filasLineas(f.IngresosLocales())...)
	return filas
}

func filasEgresos(f model.FormularioInforme, t calculo.TotalesInforme) []filaPDF {
	var filas []filaPDF
	filas = append(filas, subtitulo("Manutención del Ministro"))
	filas = append(filas, filasLineas(f.EgresosManutencion())...)
	filas = append(filas, filaPDF{
		etiqueta: "Total Manutención (Asignación - Gomer)",
		valor:    FormatoMoneda(t.TotalManutencion),
		negrita:  true,
	})
	filas = append(filas, subtitulo("Egresos por Colectas Especiales"))
	filas = append(filas, filasLineas(f.EgresosEspeciales())...)
	filas = append(filas, subtitulo("Egresos por Colectas Locales"))
	filas = append(filas, filasLineas(f.EgresosLocales())...)
	return filas
}

func filasResumen(t calculo.TotalesInforme) []filaPDF {
	return []filaPDF{
		{etiqueta: "Saldo Inicial del Mes", valor: FormatoMoneda(t.SaldoAnterior)},
		{etiqueta: "Total Ingresos del Mes", valor: FormatoMoneda(t.TotalIngresos)},
		{etiqueta: "Total Disponible del Mes", valor: FormatoMoneda(t.TotalDisponible), negrita: true},
		{etiqueta: "Total Salidas del Mes", valor: FormatoMoneda(t.TotalSalidas)},
		{etiqueta: "Utilidad o Remanente", valor: FormatoMoneda(t.Remanente), resaltada: true},
	}
}
