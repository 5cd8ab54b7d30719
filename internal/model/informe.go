package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InformeMensual is a saved draft of the monthly financial report.
// At most one exists per (Mes, Anio); see InformeID.
type InformeMensual struct {
	ID         string            `json:"id"`
	Mes        int               `json:"month"`
	Anio       int               `json:"year"`
	Formulario FormularioInforme `json:"formData"`
	GuardadoEn time.Time         `json:"savedAt"`
}

// InformeID derives the report id from its period.
func InformeID(mes, anio int) string {
	return fmt.Sprintf("report-%d-%d", anio, mes)
}

// FormularioInforme is the monthly report form. Values are kept as entered
// (strings) and parsed on read with Numero; the embedded sections flatten
// into the stable form keys when marshalled.
type FormularioInforme struct {
	DatosGenerales
	SaldoAnterior string `json:"saldo-anterior"`
	Ingresos
	Egresos
	Distribucion
	Comision
}

type DatosGenerales struct {
	ClaveIglesia    string `json:"clave-iglesia"`
	NombreIglesia   string `json:"nombre-iglesia"`
	MesReporte      string `json:"mes-reporte"`
	AnoReporte      string `json:"ano-reporte"`
	Distrito        string `json:"distrito"`
	Departamento    string `json:"departamento"`
	NombreMinistro  string `json:"nombre-ministro"`
	GradoMinistro   string `json:"grado-ministro"`
	TelMinistro     string `json:"tel-ministro"`
	MiembrosActivos string `json:"miembros-activos"`
}

type Ingresos struct {
	// Ofrendas
	IngDiezmos            string `json:"ing-diezmos"`
	IngOfrendasOrdinarias string `json:"ing-ofrendas-ordinarias"`
	IngPrimicias          string `json:"ing-primicias"`
	IngAyudaEncargado     string `json:"ing-ayuda-encargado"`

	// Colectas especiales
	IngCeremonial         string `json:"ing-ceremonial"`
	IngOfrendaEspecialSdd string `json:"ing-ofrenda-especial-sdd"`
	IngEvangelizacion     string `json:"ing-evangelizacion"`
	IngSantaCena          string `json:"ing-santa-cena"`

	// Colectas locales
	IngServiciosPublicos      string `json:"ing-servicios-publicos"`
	IngArreglosLocales        string `json:"ing-arreglos-locales"`
	IngMantenimiento          string `json:"ing-mantenimiento"`
	IngConstruccionLocal      string `json:"ing-construccion-local"`
	IngMuebles                string `json:"ing-muebles"`
	IngViajesMinistro         string `json:"ing-viajes-ministro"`
	IngReunionesMinisteriales string `json:"ing-reuniones-ministeriales"`
	IngAtencionMinistros      string `json:"ing-atencion-ministros"`
	IngViajesExtranjero       string `json:"ing-viajes-extranjero"`
	IngActividadesLocales     string `json:"ing-actividades-locales"`
	IngCiudadLldm             string `json:"ing-ciudad-lldm"`
	IngAdquisicionTerreno     string `json:"ing-adquisicion-terreno"`
}

type Egresos struct {
	// Manutención del ministro
	EgrAsignacion string `json:"egr-asignacion"`
	EgrGomer      string `json:"egr-gomer"`

	// Colectas especiales
	EgrCeremonial         string `json:"egr-ceremonial"`
	EgrOfrendaEspecialSdd string `json:"egr-ofrenda-especial-sdd"`
	EgrEvangelizacion     string `json:"egr-evangelizacion"`
	EgrSantaCena          string `json:"egr-santa-cena"`

	// Colectas locales
	EgrServiciosPublicos      string `json:"egr-servicios-publicos"`
	EgrArreglosLocales        string `json:"egr-arreglos-locales"`
	EgrMantenimiento          string `json:"egr-mantenimiento"`
	EgrTraspasoConstruccion   string `json:"egr-traspaso-construccion"`
	EgrMuebles                string `json:"egr-muebles"`
	EgrViajesMinistro         string `json:"egr-viajes-ministro"`
	EgrReunionesMinisteriales string `json:"egr-reuniones-ministeriales"`
	EgrAtencionMinistros      string `json:"egr-atencion-ministros"`
	EgrViajesExtranjero       string `json:"egr-viajes-extranjero"`
	EgrActividadesLocales     string `json:"egr-actividades-locales"`
	EgrCiudadLldm             string `json:"egr-ciudad-lldm"`
	EgrAdquisicionTerreno     string `json:"egr-adquisicion-terreno"`
}

type Distribucion struct {
	DistDireccion       string `json:"dist-direccion"`
	DistTesoreria       string `json:"dist-tesoreria"`
	DistProConstruccion string `json:"dist-pro-construccion"`
	DistOtros           string `json:"dist-otros"`
}

type Comision struct {
	ComisionNombre1 string `json:"comision-nombre-1"`
	ComisionNombre2 string `json:"comision-nombre-2"`
	ComisionNombre3 string `json:"comision-nombre-3"`
}

// Linea is one labelled line item of the form.
type Linea struct {
	Clave    string
	Etiqueta string
	Valor    string
}

// Numero parses a form value; empty or unparseable input reads as zero.
func Numero(v string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Suma adds the numeric values of the given lines.
func Suma(lineas []Linea) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		total = total.Add(Numero(l.Valor))
	}
	return total
}

func (f *FormularioInforme) IngresosOfrendas() []Linea {
	return []Linea{
		{"ing-diezmos", "Diezmos", f.IngDiezmos},
		{"ing-ofrendas-ordinarias", "Ofrendas Ordinarias", f.IngOfrendasOrdinarias},
		{"ing-primicias", "Primicias", f.IngPrimicias},
		{"ing-ayuda-encargado", "Ayuda al Encargado", f.IngAyudaEncargado},
	}
}

func (f *FormularioInforme) IngresosEspeciales() []Linea {
	return []Linea{
		{"ing-ceremonial", "Ceremonial", f.IngCeremonial},
		{"ing-ofrenda-especial-sdd", "Ofrenda Especial SdD NJG", f.IngOfrendaEspecialSdd},
		{"ing-evangelizacion", "Evangelización Mundial", f.IngEvangelizacion},
		{"ing-santa-cena", "Colecta de Santa Cena", f.IngSantaCena},
	}
}

func (f *FormularioInforme) IngresosLocales() []Linea {
	return []Linea{
		{"ing-servicios-publicos", "Pago de Servicios Públicos", f.IngServiciosPublicos},
		{"ing-arreglos-locales", "Arreglos Locales", f.IngArreglosLocales},
		{"ing-mantenimiento", "Mantenimiento y Conservación", f.IngMantenimiento},
		{"ing-construccion-local", "Construcción Local", f.IngConstruccionLocal},
		{"ing-muebles", "Muebles y Artículos", f.IngMuebles},
		{"ing-viajes-ministro", "Viajes y viáticos para Ministro", f.IngViajesMinistro},
		{"ing-reuniones-ministeriales", "Reuniones Ministeriales", f.IngReunionesMinisteriales},
		{"ing-atencion-ministros", "Atención a Ministros", f.IngAtencionMinistros},
		{"ing-viajes-extranjero", "Viajes fuera del País", f.IngViajesExtranjero},
		{"ing-actividades-locales", "Actividades Locales", f.IngActividadesLocales},
		{"ing-ciudad-lldm", "Ofrendas para Ciudad LLDM", f.IngCiudadLldm},
		{"ing-adquisicion-terreno", "Adquisición Terreno/Edificio", f.IngAdquisicionTerreno},
	}
}

func (f *FormularioInforme) EgresosManutencion() []Linea {
	return []Linea{
		{"egr-asignacion", "Asignación Autorizada", f.EgrAsignacion},
		{"egr-gomer", "Gomer del Mes", f.EgrGomer},
	}
}

func (f *FormularioInforme) EgresosEspeciales() []Linea {
	return []Linea{
		{"egr-ceremonial", "Ceremonial", f.EgrCeremonial},
		{"egr-ofrenda-especial-sdd", "Ofrenda Especial SdD NJG", f.EgrOfrendaEspecialSdd},
		{"egr-evangelizacion", "Evangelización Mundial", f.EgrEvangelizacion},
		{"egr-santa-cena", "Colecta de Santa Cena", f.EgrSantaCena},
	}
}

func (f *FormularioInforme) EgresosLocales() []Linea {
	return []Linea{
		{"egr-servicios-publicos", "Pago de Servicios Públicos", f.EgrServiciosPublicos},
		{"egr-arreglos-locales", "Arreglos Locales", f.EgrArreglosLocales},
		{"egr-mantenimiento", "Mantenimiento y Conservación", f.EgrMantenimiento},
		{"egr-traspaso-construccion", "Traspaso para Construcción Local", f.EgrTraspasoConstruccion},
		{"egr-muebles", "Muebles y Artículos", f.EgrMuebles},
		{"egr-viajes-ministro", "Viajes y viáticos para Ministro", f.EgrViajesMinistro},
		{"egr-reuniones-ministeriales", "Reuniones Ministeriales", f.EgrReunionesMinisteriales},
		{"egr-atencion-ministros", "Atención a Ministros", f.EgrAtencionMinistros},
		{"egr-viajes-extranjero", "Viajes fuera del País", f.EgrViajesExtranjero},
		{"egr-actividades-locales", "Actividades Locales", f.EgrActividadesLocales},
		{"egr-ciudad-lldm", "Ofrendas para Ciudad LLDM", f.EgrCiudadLldm},
		{"egr-adquisicion-terreno", "Adquisición Terreno/Edificio", f.EgrAdquisicionTerreno},
	}
}

func (f *FormularioInforme) LineasDistribucion() []Linea {
	return []Linea{
		{"dist-direccion", "Dirección General (Diezmos de Diezmos)", f.DistDireccion},
		{"dist-tesoreria", "Tesorería (Cuenta de Remanentes)", f.DistTesoreria},
		{"dist-pro-construccion", "Pro-Construcción", f.DistProConstruccion},
		{"dist-otros", "Otros", f.DistOtros},
	}
}
