package service

import (
	"context"
	"strings"

	"ofrendas/internal/dto"
	"ofrendas/internal/model"
	"ofrendas/internal/repository"

	"github.com/google/uuid"
)

// ComisionadoService manages the local finance committee whose names sign
// the monthly report.
type ComisionadoService interface {
	Listar(ctx context.Context) ([]model.Comisionado, error)
	Crear(ctx context.Context, req dto.ComisionadoRequest) (dto.ComisionadoResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ComisionadoRequest) (dto.ComisionadoResponse, error)
	Eliminar(ctx context.Context, id string) (dto.EliminarResponse, error)
	Sincronizar(ctx context.Context) (int, error)
}

type comisionadoService struct {
	local  *repository.Lista[model.Comisionado]
	remoto *repository.TablaRemota[model.Comisionado]
}

func NewComisionadoService(local *repository.Lista[model.Comisionado], remoto *repository.TablaRemota[model.Comisionado]) ComisionadoService {
	return &comisionadoService{local: local, remoto: remoto}
}

func (s *comisionadoService) Listar(ctx context.Context) ([]model.Comisionado, error) {
	list, _, err := s.local.Cargar(ctx)
	return list, err
}

func (s *comisionadoService) Crear(ctx context.Context, req dto.ComisionadoRequest) (dto.ComisionadoResponse, error) {
	c := model.Comisionado{ID: uuid.NewString(), Nombre: strings.TrimSpace(req.Nombre), Cargo: strings.TrimSpace(req.Cargo)}
	if c.Nombre == "" {
		return dto.ComisionadoResponse{}, ErrNombreComisionado
	}
	err := s.local.Modificar(ctx, func(cs []model.Comisionado) ([]model.Comisionado, error) {
		return append(cs, c), nil
	})
	if err != nil {
		return dto.ComisionadoResponse{}, err
	}
	adv := advertir(ctx, "crear comisionado", func(ctx context.Context) error {
		_, err := s.remoto.Crear(ctx, c)
		return err
	})
	return dto.ComisionadoResponse{Comisionado: c, Advertencia: adv}, nil
}

func (s *comisionadoService) Actualizar(ctx context.Context, id string, req dto.ComisionadoRequest) (dto.ComisionadoResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return dto.ComisionadoResponse{}, ErrNombreComisionado
	}
	var actualizado model.Comisionado
	err := s.local.Modificar(ctx, func(cs []model.Comisionado) ([]model.Comisionado, error) {
		for i := range cs {
			if cs[i].ID == id {
				cs[i].Nombre = nombre
				cs[i].Cargo = strings.TrimSpace(req.Cargo)
				actualizado = cs[i]
				return cs, nil
			}
		}
		return nil, ErrComisionadoNoEncontrado
	})
	if err != nil {
		return dto.ComisionadoResponse{}, err
	}
	adv := advertir(ctx, "actualizar comisionado", func(ctx context.Context) error {
		_, err := s.remoto.Actualizar(ctx, id, actualizado)
		return err
	})
	return dto.ComisionadoResponse{Comisionado: actualizado, Advertencia: adv}, nil
}

func (s *comisionadoService) Eliminar(ctx context.Context, id string) (dto.EliminarResponse, error) {
	err := s.local.Modificar(ctx, func(cs []model.Comisionado) ([]model.Comisionado, error) {
		for i := range cs {
			if cs[i].ID == id {
				return append(cs[:i], cs[i+1:]...), nil
			}
		}
		return nil, ErrComisionadoNoEncontrado
	})
	if err != nil {
		return dto.EliminarResponse{}, err
	}
	adv := advertir(ctx, "eliminar comisionado", func(ctx context.Context) error {
		return s.remoto.Eliminar(ctx, id)
	})
	return dto.EliminarResponse{Eliminado: true, Advertencia: adv}, nil
}

func (s *comisionadoService) Sincronizar(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutRemoto)
	defer cancel()
	cs, err := s.remoto.Listar(ctx)
	if err != nil {
		return 0, &RemotoError{Op: "sincronizar comisionados", Err: err}
	}
	return len(cs), s.local.Guardar(ctx, cs)
}
