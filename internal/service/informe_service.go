package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ofrendas/internal/calculo"
	"ofrendas/internal/dto"
	"ofrendas/internal/infra"
	"ofrendas/internal/model"
	"ofrendas/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SinRegistrosError is returned when no saved week falls in the period.
type SinRegistrosError struct{ Mes, Anio int }

func (e *SinRegistrosError) Error() string {
	return fmt.Sprintf("No se encontraron registros para %s %d.", model.NombreMes(e.Mes), e.Anio)
}

func (e *SinRegistrosError) Is(target error) bool { return target == ErrSinRegistros }

// InformeService builds the monthly financial report from the saved weeks
// and keeps one draft per month.
type InformeService interface {
	CargarDatos(ctx context.Context, req dto.CargarDatosRequest) (dto.FormularioResponse, error)
	Calcular(f model.FormularioInforme) dto.FormularioResponse
	Guardar(ctx context.Context, req dto.GuardarInformeRequest) (dto.InformeResponse, error)
	Listar(ctx context.Context) ([]dto.InformeResponse, error)
	Obtener(ctx context.Context, id string) (dto.InformeResponse, error)
	Eliminar(ctx context.Context, id string) error
	GenerarPDF(ctx context.Context, f model.FormularioInforme) (dto.ArchivoResponse, error)
	ResumenMensual(ctx context.Context, mes, anio int) (dto.ResumenMensualResponse, error)
}

type informeService struct {
	registros  repository.RegistroRepository
	informes   repository.InformeRepository
	ajustes    repository.AjustesRepository
	categorias *repository.Lista[model.Categoria]
	iglesia    string
	ahora      func() time.Time
}

func NewInformeService(
	registros repository.RegistroRepository,
	informes repository.InformeRepository,
	ajustes repository.AjustesRepository,
	categorias *repository.Lista[model.Categoria],
	iglesia string,
) InformeService {
	return &informeService{
		registros:  registros,
		informes:   informes,
		ajustes:    ajustes,
		categorias: categorias,
		iglesia:    iglesia,
		ahora:      time.Now,
	}
}

func validarPeriodo(mes, anio int) error {
	if mes < 1 || mes > 12 || anio < 1 {
		return ErrPeriodoInvalido
	}
	return nil
}

func (s *informeService) delMes(ctx context.Context, mes, anio int) ([]model.RegistroSemanal, error) {
	todos, err := s.registros.Listar(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.RegistroSemanal
	for _, r := range todos {
		if r.Mes == mes && r.Anio == anio {
			out = append(out, r)
		}
	}
	// Listar is newest first; the month reads oldest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// cantidad formats an aggregated figure; zero or negative leaves the field empty.
func cantidad(d decimal.Decimal) string {
	if !d.IsPositive() {
		return ""
	}
	return d.StringFixed(2)
}

// CargarDatos fills the aggregated and header fields of the form from the
// month's weeks. Every other field keeps the value given.
func (s *informeService) CargarDatos(ctx context.Context, req dto.CargarDatosRequest) (dto.FormularioResponse, error) {
	if err := validarPeriodo(req.Mes, req.Anio); err != nil {
		return dto.FormularioResponse{}, err
	}
	semanas, err := s.delMes(ctx, req.Mes, req.Anio)
	if err != nil {
		return dto.FormularioResponse{}, err
	}
	if len(semanas) == 0 {
		return dto.FormularioResponse{}, &SinRegistrosError{Mes: req.Mes, Anio: req.Anio}
	}
	iglesia, err := s.ajustes.Iglesia(ctx)
	if err != nil {
		return dto.FormularioResponse{}, err
	}
	formulas, err := s.ajustes.Formulas(ctx)
	if err != nil {
		return dto.FormularioResponse{}, err
	}

	acc := calculo.Acumular(semanas)
	f := req.Formulario

	f.ClaveIglesia = s.iglesia
	f.NombreIglesia = s.iglesia
	f.NombreMinistro = iglesia.MinistroPredeterminado
	if f.NombreMinistro == "" {
		f.NombreMinistro = semanas[0].Ministro
	}
	f.GradoMinistro = iglesia.GradoMinistro
	f.Distrito = iglesia.Distrito
	f.Departamento = iglesia.Departamento
	f.TelMinistro = iglesia.TelefonoMinistro
	f.MesReporte = model.NombreMes(req.Mes)
	f.AnoReporte = strconv.Itoa(req.Anio)

	f.IngDiezmos = cantidad(acc.Diezmo)
	f.IngOfrendasOrdinarias = cantidad(acc.Ordinaria)
	f.IngServiciosPublicos = cantidad(acc.Servicios)
	f.EgrServiciosPublicos = cantidad(acc.Servicios)
	f.EgrGomer = cantidad(acc.Gomer)
	f.DistDireccion = cantidad(acc.DiezmoDeDiezmo)
	f.EgrAsignacion = formulas.UmbralRemanente.String()

	log.Info().Int("mes", req.Mes).Int("anio", req.Anio).Int("semanas", acc.Semanas).Msg("monthly data loaded")

	return dto.FormularioResponse{
		Formulario: f,
		Totales:    calculo.CalcularInforme(f),
		Semanas:    acc.Semanas,
		Mensaje:    fmt.Sprintf("Datos cargados para %s %d.", model.NombreMes(req.Mes), req.Anio),
	}, nil
}

func (s *informeService) Calcular(f model.FormularioInforme) dto.FormularioResponse {
	return dto.FormularioResponse{Formulario: f, Totales: calculo.CalcularInforme(f)}
}

func mapInforme(i model.InformeMensual) dto.InformeResponse {
	return dto.InformeResponse{
		ID:         i.ID,
		Mes:        i.Mes,
		Anio:       i.Anio,
		Formulario: i.Formulario,
		Totales:    calculo.CalcularInforme(i.Formulario),
		GuardadoEn: i.GuardadoEn,
	}
}

// Guardar stores the draft for (Mes, Anio). An existing draft is only
// replaced when Sobrescribir is set.
func (s *informeService) Guardar(ctx context.Context, req dto.GuardarInformeRequest) (dto.InformeResponse, error) {
	if err := validarPeriodo(req.Mes, req.Anio); err != nil {
		return dto.InformeResponse{}, err
	}
	id := model.InformeID(req.Mes, req.Anio)
	if _, err := s.informes.Obtener(ctx, id); err == nil {
		if !req.Sobrescribir {
			return dto.InformeResponse{}, ErrInformeExistente
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return dto.InformeResponse{}, err
	}

	inf := model.InformeMensual{
		ID:         id,
		Mes:        req.Mes,
		Anio:       req.Anio,
		Formulario: req.Formulario,
		GuardadoEn: s.ahora(),
	}
	if err := s.informes.Guardar(ctx, inf); err != nil {
		return dto.InformeResponse{}, err
	}
	return mapInforme(inf), nil
}

func (s *informeService) Listar(ctx context.Context) ([]dto.InformeResponse, error) {
	list, err := s.informes.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InformeResponse, 0, len(list))
	for _, i := range list {
		result = append(result, mapInforme(i))
	}
	return result, nil
}

func (s *informeService) Obtener(ctx context.Context, id string) (dto.InformeResponse, error) {
	inf, err := s.informes.Obtener(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.InformeResponse{}, ErrInformeNoEncontrado
		}
		return dto.InformeResponse{}, err
	}
	return mapInforme(*inf), nil
}

func (s *informeService) Eliminar(ctx context.Context, id string) error {
	ok, err := s.informes.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInformeNoEncontrado
	}
	return nil
}

func (s *informeService) GenerarPDF(_ context.Context, f model.FormularioInforme) (dto.ArchivoResponse, error) {
	data, nombre, err := infra.GenerarInformePDF(f, calculo.CalcularInforme(f))
	if err != nil {
		return dto.ArchivoResponse{}, err
	}
	return dto.ArchivoResponse{Nombre: nombre, Datos: data}, nil
}

// ResumenMensual totals the month per category and lists each week's
// close-out computed with its own formulas.
func (s *informeService) ResumenMensual(ctx context.Context, mes, anio int) (dto.ResumenMensualResponse, error) {
	if err := validarPeriodo(mes, anio); err != nil {
		return dto.ResumenMensualResponse{}, err
	}
	semanas, err := s.delMes(ctx, mes, anio)
	if err != nil {
		return dto.ResumenMensualResponse{}, err
	}
	cats, err := nombresCategorias(ctx, s.categorias)
	if err != nil {
		return dto.ResumenMensualResponse{}, err
	}

	var todas []model.Ofrenda
	resp := dto.ResumenMensualResponse{Mes: mes, Anio: anio, Semanas: make([]dto.SemanaResumen, 0, len(semanas))}
	for _, r := range semanas {
		todas = append(todas, r.Ofrendas...)
		resp.Semanas = append(resp.Semanas, dto.SemanaResumen{
			RegistroID: r.ID,
			Dia:        r.Dia,
			Ministro:   r.Ministro,
			Resultado:  calculo.CalcularRegistro(r, cats),
		})
	}
	acc := calculo.Acumular(semanas)
	resp.Categorias = calculo.Subtotales(todas, cats)
	resp.Total = acc.Diezmo.Add(acc.Ordinaria)
	resp.DiezmoDeDiezmo = acc.DiezmoDeDiezmo
	resp.Gomer = acc.Gomer
	resp.Servicios = acc.Servicios
	return resp, nil
}
