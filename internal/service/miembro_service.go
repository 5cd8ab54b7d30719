package service

import (
	"context"
	"strings"

	"ofrendas/internal/dto"
	"ofrendas/internal/model"
	"ofrendas/internal/repository"

	"github.com/google/uuid"
)

// MiembroService manages the congregation members. The local cache is
// updated first; the remote table follows best-effort and a failure there
// comes back as Advertencia.
type MiembroService interface {
	Listar(ctx context.Context) ([]model.Miembro, error)
	Crear(ctx context.Context, req dto.CrearMiembroRequest) (dto.MiembroResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarMiembroRequest) (dto.MiembroResponse, error)
	Eliminar(ctx context.Context, id string) (dto.EliminarResponse, error)
	// Sincronizar replaces the local cache with the remote table.
	Sincronizar(ctx context.Context) (int, error)
}

type miembroService struct {
	local  *repository.Lista[model.Miembro]
	remoto *repository.TablaRemota[model.Miembro]
}

func NewMiembroService(local *repository.Lista[model.Miembro], remoto *repository.TablaRemota[model.Miembro]) MiembroService {
	return &miembroService{local: local, remoto: remoto}
}

func nombreDisponible(ms []model.Miembro, nombre, exceptoID string) bool {
	for _, m := range ms {
		if m.ID != exceptoID && strings.EqualFold(m.Nombre, nombre) {
			return false
		}
	}
	return true
}

func (s *miembroService) Listar(ctx context.Context) ([]model.Miembro, error) {
	list, _, err := s.local.Cargar(ctx)
	if err != nil {
		return nil, err
	}
	ordenarMiembros(list)
	return list, nil
}

func (s *miembroService) Crear(ctx context.Context, req dto.CrearMiembroRequest) (dto.MiembroResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return dto.MiembroResponse{}, ErrNombreMiembro
	}
	m := model.Miembro{ID: uuid.NewString(), Nombre: nombre, IsActive: true}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	err := s.local.Modificar(ctx, func(ms []model.Miembro) ([]model.Miembro, error) {
		if !nombreDisponible(ms, nombre, "") {
			return nil, ErrNombreMiembro
		}
		ms = append(ms, m)
		ordenarMiembros(ms)
		return ms, nil
	})
	if err != nil {
		return dto.MiembroResponse{}, err
	}

	adv := advertir(ctx, "crear miembro", func(ctx context.Context) error {
		_, err := s.remoto.Crear(ctx, m)
		return err
	})
	return dto.MiembroResponse{Miembro: m, Advertencia: adv}, nil
}

func (s *miembroService) Actualizar(ctx context.Context, id string, req dto.ActualizarMiembroRequest) (dto.MiembroResponse, error) {
	var actualizado model.Miembro
	err := s.local.Modificar(ctx, func(ms []model.Miembro) ([]model.Miembro, error) {
		for i := range ms {
			if ms[i].ID != id {
				continue
			}
			if req.Nombre != nil {
				nombre := strings.TrimSpace(*req.Nombre)
				if nombre == "" || !nombreDisponible(ms, nombre, id) {
					return nil, ErrNombreMiembro
				}
				ms[i].Nombre = nombre
			}
			if req.IsActive != nil {
				ms[i].IsActive = *req.IsActive
			}
			actualizado = ms[i]
			ordenarMiembros(ms)
			return ms, nil
		}
		return nil, ErrMiembroNoEncontrado
	})
	if err != nil {
		return dto.MiembroResponse{}, err
	}

	adv := advertir(ctx, "actualizar miembro", func(ctx context.Context) error {
		_, err := s.remoto.Actualizar(ctx, id, actualizado)
		return err
	})
	return dto.MiembroResponse{Miembro: actualizado, Advertencia: adv}, nil
}

func (s *miembroService) Eliminar(ctx context.Context, id string) (dto.EliminarResponse, error) {
	err := s.local.Modificar(ctx, func(ms []model.Miembro) ([]model.Miembro, error) {
		for i := range ms {
			if ms[i].ID == id {
				return append(ms[:i], ms[i+1:]...), nil
			}
		}
		return nil, ErrMiembroNoEncontrado
	})
	if err != nil {
		return dto.EliminarResponse{}, err
	}
	adv := advertir(ctx, "eliminar miembro", func(ctx context.Context) error {
		return s.remoto.Eliminar(ctx, id)
	})
	return dto.EliminarResponse{Eliminado: true, Advertencia: adv}, nil
}

func (s *miembroService) Sincronizar(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutRemoto)
	defer cancel()
	ms, err := s.remoto.Listar(ctx)
	if err != nil {
		return 0, &RemotoError{Op: "sincronizar miembros", Err: err}
	}
	ordenarMiembros(ms)
	return len(ms), s.local.Guardar(ctx, ms)
}
