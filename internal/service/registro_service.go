package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"ofrendas/internal/calculo"
	"ofrendas/internal/dto"
	"ofrendas/internal/infra"
	"ofrendas/internal/model"
	"ofrendas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RegistroService drives the weekly record lifecycle: at most one week is
// in progress; saving commits it locally and then uploads its workbook.
type RegistroService interface {
	Crear(ctx context.Context, req dto.CrearRegistroRequest) (dto.RegistroResponse, error)
	// Actual returns the week in progress, or nil.
	Actual(ctx context.Context) (*dto.RegistroResponse, error)
	// Descartar drops the week in progress without saving; reports whether there was one.
	Descartar() bool
	AgregarOfrenda(ctx context.Context, req dto.AgregarOfrendaRequest) (dto.RegistroResponse, error)
	QuitarOfrenda(ctx context.Context, ofrendaID string) (dto.RegistroResponse, error)
	ResumenActual(ctx context.Context) (calculo.Resultado, error)
	Guardar(ctx context.Context) (dto.GuardarRegistroResponse, error)

	Listar(ctx context.Context) ([]dto.RegistroResponse, error)
	Obtener(ctx context.Context, id string) (dto.RegistroResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarRegistroRequest) (dto.RegistroResponse, error)
	Eliminar(ctx context.Context, id string) error
	Resumen(ctx context.Context, id string) (calculo.Resultado, error)
	Exportar(ctx context.Context, id string) (dto.ArchivoResponse, error)
	Subir(ctx context.Context, id string) (dto.SubidaResponse, error)
}

type registroService struct {
	mu     sync.Mutex
	actual *model.RegistroSemanal

	registros  repository.RegistroRepository
	ajustes    repository.AjustesRepository
	miembros   *repository.Lista[model.Miembro]
	categorias *repository.Lista[model.Categoria]
	pub        *Publicador
}

func NewRegistroService(
	registros repository.RegistroRepository,
	ajustes repository.AjustesRepository,
	miembros *repository.Lista[model.Miembro],
	categorias *repository.Lista[model.Categoria],
	pub *Publicador,
) RegistroService {
	return &registroService{
		registros:  registros,
		ajustes:    ajustes,
		miembros:   miembros,
		categorias: categorias,
		pub:        pub,
	}
}

func (s *registroService) respuesta(ctx context.Context, r model.RegistroSemanal) (dto.RegistroResponse, error) {
	cats, err := nombresCategorias(ctx, s.categorias)
	if err != nil {
		return dto.RegistroResponse{}, err
	}
	return dto.RegistroResponse{RegistroSemanal: r, Resultado: calculo.CalcularRegistro(r, cats)}, nil
}

// validarFecha rejects missing fields and dates that do not exist.
func validarFecha(dia, mes, anio int) error {
	if dia == 0 || mes == 0 || anio == 0 {
		return ErrFechaIncompleta
	}
	if mes < 1 || mes > 12 || dia < 1 || anio < 1 {
		return ErrFechaInvalida
	}
	t := time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
	if t.Day() != dia {
		return ErrFechaInvalida
	}
	return nil
}

// ── Week in progress ──────────────────────────────────────────────────────────

func (s *registroService) Crear(ctx context.Context, req dto.CrearRegistroRequest) (dto.RegistroResponse, error) {
	if err := validarFecha(req.Dia, req.Mes, req.Anio); err != nil {
		return dto.RegistroResponse{}, err
	}
	formulas, err := s.ajustes.Formulas(ctx)
	if err != nil {
		return dto.RegistroResponse{}, err
	}
	iglesia, err := s.ajustes.Iglesia(ctx)
	if err != nil {
		return dto.RegistroResponse{}, err
	}

	r := model.RegistroSemanal{
		ID:       uuid.NewString(),
		Dia:      req.Dia,
		Mes:      req.Mes,
		Anio:     req.Anio,
		Ministro: iglesia.MinistroPredeterminado,
		Ofrendas: []model.Ofrenda{},
		Formulas: formulas,
	}

	s.mu.Lock()
	if s.actual != nil {
		log.Warn().
			Str("registro_id", s.actual.ID).
			Int("ofrendas", len(s.actual.Ofrendas)).
			Msg("unsaved week discarded by a new one")
	}
	s.actual = &r
	s.mu.Unlock()

	return s.respuesta(ctx, r)
}

func (s *registroService) Actual(ctx context.Context) (*dto.RegistroResponse, error) {
	s.mu.Lock()
	if s.actual == nil {
		s.mu.Unlock()
		return nil, nil
	}
	r := copiarRegistro(*s.actual)
	s.mu.Unlock()

	resp, err := s.respuesta(ctx, r)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *registroService) Descartar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	habia := s.actual != nil
	s.actual = nil
	return habia
}

func (s *registroService) AgregarOfrenda(ctx context.Context, req dto.AgregarOfrendaRequest) (dto.RegistroResponse, error) {
	if req.MiembroID == "" {
		return dto.RegistroResponse{}, ErrMiembroRequerido
	}
	if !req.Monto.IsPositive() {
		return dto.RegistroResponse{}, ErrMontoInvalido
	}
	miembros, _, err := s.miembros.Cargar(ctx)
	if err != nil {
		return dto.RegistroResponse{}, err
	}
	m, ok := buscarMiembro(miembros, req.MiembroID)
	if !ok {
		return dto.RegistroResponse{}, ErrMiembroNoEncontrado
	}
	cats, err := nombresCategorias(ctx, s.categorias)
	if err != nil {
		return dto.RegistroResponse{}, err
	}
	if !contiene(cats, req.Categoria) {
		return dto.RegistroResponse{}, ErrCategoriaInvalida
	}

	s.mu.Lock()
	if s.actual == nil {
		s.mu.Unlock()
		return dto.RegistroResponse{}, ErrSinRegistroActual
	}
	s.actual.Ofrendas = append(s.actual.Ofrendas, model.Ofrenda{
		ID:            uuid.NewString(),
		MiembroID:     m.ID,
		MiembroNombre: m.Nombre,
		Categoria:     req.Categoria,
		Monto:         req.Monto,
	})
	r := copiarRegistro(*s.actual)
	s.mu.Unlock()

	return dto.RegistroResponse{RegistroSemanal: r, Resultado: calculo.CalcularRegistro(r, cats)}, nil
}

func (s *registroService) QuitarOfrenda(ctx context.Context, ofrendaID string) (dto.RegistroResponse, error) {
	s.mu.Lock()
	if s.actual == nil {
		s.mu.Unlock()
		return dto.RegistroResponse{}, ErrSinRegistroActual
	}
	ofrendas := s.actual.Ofrendas[:0]
	for _, o := range s.actual.Ofrendas {
		if o.ID != ofrendaID {
			ofrendas = append(ofrendas, o)
		}
	}
	s.actual.Ofrendas = ofrendas
	r := copiarRegistro(*s.actual)
	s.mu.Unlock()

	return s.respuesta(ctx, r)
}

func (s *registroService) ResumenActual(ctx context.Context) (calculo.Resultado, error) {
	r, err := s.Actual(ctx)
	if err != nil {
		return calculo.Resultado{}, err
	}
	if r == nil {
		return calculo.Resultado{}, ErrSinRegistroActual
	}
	return r.Resultado, nil
}

// Guardar commits the week locally, then uploads the workbook. An upload
// failure is reported in the response and never undoes the local save.
func (s *registroService) Guardar(ctx context.Context) (dto.GuardarRegistroResponse, error) {
	s.mu.Lock()
	if s.actual == nil {
		s.mu.Unlock()
		return dto.GuardarRegistroResponse{}, ErrSinRegistroActual
	}
	r := copiarRegistro(*s.actual)
	if err := s.registros.Upsert(ctx, r); err != nil {
		s.mu.Unlock()
		return dto.GuardarRegistroResponse{}, err
	}
	s.actual = nil
	s.mu.Unlock()

	log.Info().Str("registro_id", r.ID).Int("ofrendas", len(r.Ofrendas)).Msg("week saved locally")

	subida := s.pub.Publicar(ctx, r)
	resp, err := s.respuesta(ctx, r)
	if err != nil {
		return dto.GuardarRegistroResponse{}, err
	}
	return dto.GuardarRegistroResponse{Registro: resp, Subida: subida}, nil
}

// ── Saved weeks ───────────────────────────────────────────────────────────────

func (s *registroService) obtener(ctx context.Context, id string) (model.RegistroSemanal, error) {
	r, err := s.registros.Obtener(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.RegistroSemanal{}, ErrRegistroNoEncontrado
		}
		return model.RegistroSemanal{}, err
	}
	return *r, nil
}

func (s *registroService) Listar(ctx context.Context) ([]dto.RegistroResponse, error) {
	list, err := s.registros.Listar(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := nombresCategorias(ctx, s.categorias)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RegistroResponse, 0, len(list))
	for _, r := range list {
		result = append(result, dto.RegistroResponse{RegistroSemanal: r, Resultado: calculo.CalcularRegistro(r, cats)})
	}
	return result, nil
}

func (s *registroService) Obtener(ctx context.Context, id string) (dto.RegistroResponse, error) {
	r, err := s.obtener(ctx, id)
	if err != nil {
		return dto.RegistroResponse{}, err
	}
	return s.respuesta(ctx, r)
}

// Actualizar edits a saved week. The formulas snapshot is never changed.
func (s *registroService) Actualizar(ctx context.Context, id string, req dto.ActualizarRegistroRequest) (dto.RegistroResponse, error) {
	r, err := s.obtener(ctx, id)
	if err != nil {
		return dto.RegistroResponse{}, err
	}
	if req.Dia != nil {
		r.Dia = *req.Dia
	}
	if req.Mes != nil {
		r.Mes = *req.Mes
	}
	if req.Anio != nil {
		r.Anio = *req.Anio
	}
	if err := validarFecha(r.Dia, r.Mes, r.Anio); err != nil {
		return dto.RegistroResponse{}, err
	}
	if req.Ministro != nil {
		r.Ministro = *req.Ministro
	}
	if req.Ofrendas != nil {
		ofrendas, err := s.ofrendasEditadas(ctx, *req.Ofrendas)
		if err != nil {
			return dto.RegistroResponse{}, err
		}
		r.Ofrendas = ofrendas
	}

	if err := s.registros.Upsert(ctx, r); err != nil {
		return dto.RegistroResponse{}, err
	}
	return s.respuesta(ctx, r)
}

// ofrendasEditadas validates a replacement donation list. Known members
// take their current name; unknown ids keep the name sent, which is how
// weeks loaded from the cloud arrive. New donations (no id) must use a
// current category; existing ones keep theirs even if it was removed.
func (s *registroService) ofrendasEditadas(ctx context.Context, reqs []dto.OfrendaRequest) ([]model.Ofrenda, error) {
	miembros, _, err := s.miembros.Cargar(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := nombresCategorias(ctx, s.categorias)
	if err != nil {
		return nil, err
	}
	out := make([]model.Ofrenda, 0, len(reqs))
	for _, o := range reqs {
		if o.MiembroID == "" {
			return nil, ErrMiembroRequerido
		}
		if !o.Monto.IsPositive() {
			return nil, ErrMontoInvalido
		}
		if o.ID == "" && !contiene(cats, o.Categoria) {
			return nil, ErrCategoriaInvalida
		}
		nombre := o.MiembroNombre
		if m, ok := buscarMiembro(miembros, o.MiembroID); ok {
			nombre = m.Nombre
		}
		if nombre == "" {
			return nil, ErrMiembroNoEncontrado
		}
		id := o.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, model.Ofrenda{ID: id, MiembroID: o.MiembroID, MiembroNombre: nombre, Categoria: o.Categoria, Monto: o.Monto})
	}
	return out, nil
}

func (s *registroService) Eliminar(ctx context.Context, id string) error {
	ok, err := s.registros.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRegistroNoEncontrado
	}
	log.Info().Str("registro_id", id).Msg("week deleted")
	return nil
}

func (s *registroService) Resumen(ctx context.Context, id string) (calculo.Resultado, error) {
	resp, err := s.Obtener(ctx, id)
	if err != nil {
		return calculo.Resultado{}, err
	}
	return resp.Resultado, nil
}

func (s *registroService) Exportar(ctx context.Context, id string) (dto.ArchivoResponse, error) {
	r, err := s.obtener(ctx, id)
	if err != nil {
		return dto.ArchivoResponse{}, err
	}
	cats, err := nombresCategorias(ctx, s.categorias)
	if err != nil {
		return dto.ArchivoResponse{}, err
	}
	data, nombre, err := infra.ExportarSemanal(r, cats, s.pub.iglesia)
	if err != nil {
		return dto.ArchivoResponse{}, err
	}
	return dto.ArchivoResponse{Nombre: nombre, Datos: data}, nil
}

func (s *registroService) Subir(ctx context.Context, id string) (dto.SubidaResponse, error) {
	r, err := s.obtener(ctx, id)
	if err != nil {
		return dto.SubidaResponse{}, err
	}
	return s.pub.Publicar(ctx, r), nil
}

func copiarRegistro(r model.RegistroSemanal) model.RegistroSemanal {
	r.Ofrendas = append([]model.Ofrenda(nil), r.Ofrendas...)
	if r.Ofrendas == nil {
		r.Ofrendas = []model.Ofrenda{}
	}
	return r
}

func contiene(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
