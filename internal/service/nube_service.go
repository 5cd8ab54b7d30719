package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ofrendas/internal/apierror"
	"ofrendas/internal/calculo"
	"ofrendas/internal/dto"
	"ofrendas/internal/infra"
	"ofrendas/internal/model"
	"ofrendas/internal/remote"
	"ofrendas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ── Publicador ────────────────────────────────────────────────────────────────

// Publicador renders a week's workbook and uploads it (upsert) to the
// weekly bucket, recording every attempt in the upload history.
type Publicador struct {
	gw         remote.Files
	bucket     string
	iglesia    string
	categorias *repository.Lista[model.Categoria]
	subidas    repository.SubidaRepository
	ahora      func() time.Time
}

func NewPublicador(gw remote.Files, bucket, iglesia string, categorias *repository.Lista[model.Categoria], subidas repository.SubidaRepository) *Publicador {
	return &Publicador{
		gw:         gw,
		bucket:     bucket,
		iglesia:    iglesia,
		categorias: categorias,
		subidas:    subidas,
		ahora:      time.Now,
	}
}

// Publicar never returns an error: the outcome is in the response and in
// the upload history.
func (p *Publicador) Publicar(ctx context.Context, r model.RegistroSemanal) dto.SubidaResponse {
	nombre := infra.NombreArchivoSemanal(r, p.iglesia)
	err := p.subir(ctx, r)

	sub := model.Subida{RegistroID: r.ID, Archivo: nombre, Bucket: p.bucket, Exitosa: err == nil, Fecha: p.ahora()}
	resp := dto.SubidaResponse{Archivo: nombre, Bucket: p.bucket, Exitosa: err == nil}
	if err != nil {
		sub.Error = err.Error()
		resp.Mensaje = apierror.MensajeRemoto(err, p.bucket)
		log.Warn().Err(err).Str("registro_id", r.ID).Str("archivo", nombre).Msg("weekly upload failed")
	} else {
		resp.URL = p.gw.PublicURL(p.bucket, nombre)
		resp.Mensaje = "Semana guardada localmente y subida a la nube como: " + nombre
		log.Info().Str("registro_id", r.ID).Str("archivo", nombre).Msg("weekly workbook uploaded")
	}

	if err := p.subidas.Registrar(ctx, sub); err != nil {
		log.Error().Err(err).Str("registro_id", r.ID).Msg("upload history not recorded")
	}
	return resp
}

func (p *Publicador) subir(ctx context.Context, r model.RegistroSemanal) error {
	cats, err := nombresCategorias(ctx, p.categorias)
	if err != nil {
		return err
	}
	data, nombre, err := infra.ExportarSemanal(r, cats, p.iglesia)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, timeoutRemoto)
	defer cancel()
	return p.gw.UploadFile(ctx, p.bucket, nombre, data, true)
}

// ── NubeService ───────────────────────────────────────────────────────────────

// NubeService lists the weekly workbooks in remote storage and loads them
// back as local weeks.
type NubeService interface {
	ListarArchivos(ctx context.Context) ([]dto.ArchivoNubeResponse, error)
	Cargar(ctx context.Context, req dto.CargarNubeRequest) (dto.CargarNubeResponse, error)
	Subidas(ctx context.Context) ([]model.Subida, error)
}

type nubeService struct {
	gw         remote.Files
	bucket     string
	registros  repository.RegistroRepository
	ajustes    repository.AjustesRepository
	miembros   *repository.Lista[model.Miembro]
	categorias *repository.Lista[model.Categoria]
	subidas    repository.SubidaRepository
}

func NewNubeService(
	gw remote.Files,
	bucket string,
	registros repository.RegistroRepository,
	ajustes repository.AjustesRepository,
	miembros *repository.Lista[model.Miembro],
	categorias *repository.Lista[model.Categoria],
	subidas repository.SubidaRepository,
) NubeService {
	return &nubeService{
		gw:         gw,
		bucket:     bucket,
		registros:  registros,
		ajustes:    ajustes,
		miembros:   miembros,
		categorias: categorias,
		subidas:    subidas,
	}
}

func (s *nubeService) ListarArchivos(ctx context.Context) ([]dto.ArchivoNubeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutRemoto)
	defer cancel()
	files, err := s.gw.ListFiles(ctx, s.bucket)
	if err != nil {
		return nil, &RemotoError{Op: "listar archivos", Bucket: s.bucket, Err: err}
	}
	result := make([]dto.ArchivoNubeResponse, 0, len(files))
	for _, f := range files {
		result = append(result, dto.ArchivoNubeResponse{
			Nombre:   f.Name,
			CreadoEn: f.CreatedAt,
			URL:      s.gw.PublicURL(s.bucket, f.Name),
		})
	}
	return result, nil
}

// Cargar downloads a workbook and turns it into a local week dated from
// the file name. A week with the same date is only replaced (keeping its
// id) when Sobrescribir is set.
func (s *nubeService) Cargar(ctx context.Context, req dto.CargarNubeRequest) (dto.CargarNubeResponse, error) {
	dia, mes, anio, err := infra.ParseNombreSemanal(req.Archivo)
	if err == nil {
		err = validarFecha(dia, mes, anio)
	}
	if err != nil {
		return dto.CargarNubeResponse{}, fmt.Errorf("%w: %s", ErrNombreArchivoInvalido, req.Archivo)
	}

	dctx, cancel := context.WithTimeout(ctx, timeoutRemoto)
	data, err := s.gw.Download(dctx, s.bucket, req.Archivo)
	cancel()
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return dto.CargarNubeResponse{}, ErrArchivoNoEncontrado
		}
		return dto.CargarNubeResponse{}, &RemotoError{Op: "descargar " + req.Archivo, Bucket: s.bucket, Err: err}
	}

	ofrendas, err := infra.LeerDetalleOfrendas(data)
	if err != nil {
		return dto.CargarNubeResponse{}, fmt.Errorf("%w: %v", ErrArchivoIlegible, err)
	}
	if err := s.resolverMiembros(ctx, ofrendas); err != nil {
		return dto.CargarNubeResponse{}, err
	}

	formulas, err := s.ajustes.Formulas(ctx)
	if err != nil {
		return dto.CargarNubeResponse{}, err
	}
	iglesia, err := s.ajustes.Iglesia(ctx)
	if err != nil {
		return dto.CargarNubeResponse{}, err
	}
	nuevo := model.RegistroSemanal{
		ID:       uuid.NewString(),
		Dia:      dia,
		Mes:      mes,
		Anio:     anio,
		Ministro: iglesia.MinistroPredeterminado,
		Ofrendas: ofrendas,
		Formulas: formulas,
	}

	existentes, err := s.registros.Listar(ctx)
	if err != nil {
		return dto.CargarNubeResponse{}, err
	}
	reemplazado := false
	for _, r := range existentes {
		if r.MismaFecha(nuevo) {
			if !req.Sobrescribir {
				return dto.CargarNubeResponse{}, fmt.Errorf("%w: %d/%d/%d", ErrFechaDuplicada, dia, mes, anio)
			}
			nuevo.ID = r.ID
			reemplazado = true
			break
		}
	}
	if err := s.registros.Upsert(ctx, nuevo); err != nil {
		return dto.CargarNubeResponse{}, err
	}

	cats, err := nombresCategorias(ctx, s.categorias)
	if err != nil {
		return dto.CargarNubeResponse{}, err
	}
	resp := dto.CargarNubeResponse{
		Registro:    dto.RegistroResponse{RegistroSemanal: nuevo, Resultado: calculo.CalcularRegistro(nuevo, cats)},
		Reemplazado: reemplazado,
		Mensaje:     "Registro cargado desde la nube y añadido a la lista local.",
	}
	if reemplazado {
		resp.Mensaje = "Registro local actualizado con éxito desde la nube."
	}
	log.Info().Str("archivo", req.Archivo).Bool("reemplazado", reemplazado).Int("ofrendas", len(ofrendas)).Msg("week loaded from cloud")
	return resp, nil
}

// resolverMiembros links imported donations to local members by name.
// Unknown names get a synthetic id so the week stays editable.
func (s *nubeService) resolverMiembros(ctx context.Context, ofrendas []model.Ofrenda) error {
	miembros, _, err := s.miembros.Cargar(ctx)
	if err != nil {
		return err
	}
	for i := range ofrendas {
		if m, ok := buscarMiembroPorNombre(miembros, ofrendas[i].MiembroNombre); ok {
			ofrendas[i].MiembroID = m.ID
			continue
		}
		ofrendas[i].MiembroID = "m-nube-" + uuid.NewString()
	}
	return nil
}

func (s *nubeService) Subidas(ctx context.Context) ([]model.Subida, error) {
	return s.subidas.Listar(ctx)
}
