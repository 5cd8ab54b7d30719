package service

import (
	"context"
	"strings"

	"ofrendas/internal/dto"
	"ofrendas/internal/model"
	"ofrendas/internal/repository"

	"github.com/shopspring/decimal"
)

// AjustesService exposes the single-value settings: close-out formulas,
// church info and the UI theme. New formulas only affect records created
// afterwards; saved records keep their snapshot.
type AjustesService interface {
	Formulas(ctx context.Context) (model.Formulas, error)
	GuardarFormulas(ctx context.Context, req dto.FormulasRequest) (model.Formulas, error)
	Iglesia(ctx context.Context) (model.InfoIglesia, error)
	GuardarIglesia(ctx context.Context, req dto.IglesiaRequest) (model.InfoIglesia, error)
	Tema(ctx context.Context) (model.Tema, error)
	GuardarTema(ctx context.Context, req dto.TemaRequest) (model.Tema, error)
}

type ajustesService struct {
	repo repository.AjustesRepository
}

func NewAjustesService(repo repository.AjustesRepository) AjustesService {
	return &ajustesService{repo: repo}
}

var cien = decimal.NewFromInt(100)

func (s *ajustesService) Formulas(ctx context.Context) (model.Formulas, error) {
	return s.repo.Formulas(ctx)
}

func (s *ajustesService) GuardarFormulas(ctx context.Context, req dto.FormulasRequest) (model.Formulas, error) {
	if req.DiezmoPorcentaje.IsNegative() || req.DiezmoPorcentaje.GreaterThan(cien) {
		return model.Formulas{}, ErrPorcentajeInvalido
	}
	f := model.Formulas{DiezmoPorcentaje: req.DiezmoPorcentaje, UmbralRemanente: req.UmbralRemanente}
	if err := s.repo.GuardarFormulas(ctx, f); err != nil {
		return model.Formulas{}, err
	}
	return f, nil
}

func (s *ajustesService) Iglesia(ctx context.Context) (model.InfoIglesia, error) {
	return s.repo.Iglesia(ctx)
}

func (s *ajustesService) GuardarIglesia(ctx context.Context, req dto.IglesiaRequest) (model.InfoIglesia, error) {
	i := model.InfoIglesia{
		MinistroPredeterminado: strings.TrimSpace(req.MinistroPredeterminado),
		GradoMinistro:          strings.TrimSpace(req.GradoMinistro),
		Distrito:               strings.TrimSpace(req.Distrito),
		Departamento:           strings.TrimSpace(req.Departamento),
		TelefonoMinistro:       strings.TrimSpace(req.TelefonoMinistro),
	}
	if err := s.repo.GuardarIglesia(ctx, i); err != nil {
		return model.InfoIglesia{}, err
	}
	return i, nil
}

func (s *ajustesService) Tema(ctx context.Context) (model.Tema, error) {
	return s.repo.Tema(ctx)
}

func (s *ajustesService) GuardarTema(ctx context.Context, req dto.TemaRequest) (model.Tema, error) {
	t := model.Tema(req.Tema)
	if t != model.TemaClaro && t != model.TemaOscuro {
		return "", ErrTemaInvalido
	}
	if err := s.repo.GuardarTema(ctx, t); err != nil {
		return "", err
	}
	return t, nil
}
