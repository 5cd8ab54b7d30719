package service

import (
	"context"
	"strings"

	"ofrendas/internal/dto"
	"ofrendas/internal/model"
	"ofrendas/internal/repository"

	"github.com/google/uuid"
)

// CategoriaService manages the offering categories. A removed category
// disappears from subtotals and exports but donations keep their label.
type CategoriaService interface {
	Listar(ctx context.Context) ([]model.Categoria, error)
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id string) (dto.EliminarResponse, error)
	Sincronizar(ctx context.Context) (int, error)
}

type categoriaService struct {
	local  *repository.Lista[model.Categoria]
	remoto *repository.TablaRemota[model.Categoria]
}

func NewCategoriaService(local *repository.Lista[model.Categoria], remoto *repository.TablaRemota[model.Categoria]) CategoriaService {
	return &categoriaService{local: local, remoto: remoto}
}

func (s *categoriaService) Listar(ctx context.Context) ([]model.Categoria, error) {
	return cargarCategorias(ctx, s.local)
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return dto.CategoriaResponse{}, ErrNombreCategoria
	}
	if _, err := cargarCategorias(ctx, s.local); err != nil {
		return dto.CategoriaResponse{}, err
	}

	c := model.Categoria{ID: uuid.NewString(), Nombre: nombre}
	err := s.local.Modificar(ctx, func(cats []model.Categoria) ([]model.Categoria, error) {
		for _, x := range cats {
			if strings.EqualFold(x.Nombre, nombre) {
				return nil, ErrNombreCategoria
			}
		}
		cats = append(cats, c)
		ordenarCategorias(cats)
		return cats, nil
	})
	if err != nil {
		return dto.CategoriaResponse{}, err
	}

	adv := advertir(ctx, "crear categoria", func(ctx context.Context) error {
		_, err := s.remoto.Crear(ctx, c)
		return err
	})
	return dto.CategoriaResponse{Categoria: c, Advertencia: adv}, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id string) (dto.EliminarResponse, error) {
	if _, err := cargarCategorias(ctx, s.local); err != nil {
		return dto.EliminarResponse{}, err
	}
	err := s.local.Modificar(ctx, func(cats []model.Categoria) ([]model.Categoria, error) {
		for i := range cats {
			if cats[i].ID == id {
				return append(cats[:i], cats[i+1:]...), nil
			}
		}
		return nil, ErrCategoriaNoEncontrada
	})
	if err != nil {
		return dto.EliminarResponse{}, err
	}
	adv := advertir(ctx, "eliminar categoria", func(ctx context.Context) error {
		return s.remoto.Eliminar(ctx, id)
	})
	return dto.EliminarResponse{Eliminado: true, Advertencia: adv}, nil
}

func (s *categoriaService) Sincronizar(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutRemoto)
	defer cancel()
	cats, err := s.remoto.Listar(ctx)
	if err != nil {
		return 0, &RemotoError{Op: "sincronizar categorias", Err: err}
	}
	ordenarCategorias(cats)
	return len(cats), s.local.Guardar(ctx, cats)
}
