package service

import (
	"context"
	"strings"

	"ofrendas/internal/dto"
	"ofrendas/internal/model"
	"ofrendas/internal/repository"

	"github.com/rs/zerolog/log"
)

// AdminService groups the maintenance operations that touch every catalogue.
type AdminService interface {
	// Semilla inserts the initial categories and the configured members that
	// the remote tables lack, one by one. The first failure stops the loop;
	// rows already inserted stay.
	Semilla(ctx context.Context) (dto.SemillaResponse, error)
	// Sincronizar pulls members, categories and comisionados into the local cache.
	Sincronizar(ctx context.Context) (dto.SincronizarResponse, error)
}

type adminService struct {
	miembrosRemotos   *repository.TablaRemota[model.Miembro]
	categoriasRemotas *repository.TablaRemota[model.Categoria]
	miembros          MiembroService
	categorias        CategoriaService
	comisionados      ComisionadoService
	miembrosSemilla   []string
}

func NewAdminService(
	miembrosRemotos *repository.TablaRemota[model.Miembro],
	categoriasRemotas *repository.TablaRemota[model.Categoria],
	miembros MiembroService,
	categorias CategoriaService,
	comisionados ComisionadoService,
	miembrosSemilla []string,
) AdminService {
	return &adminService{
		miembrosRemotos:   miembrosRemotos,
		categoriasRemotas: categoriasRemotas,
		miembros:          miembros,
		categorias:        categorias,
		comisionados:      comisionados,
		miembrosSemilla:   miembrosSemilla,
	}
}

func (s *adminService) Semilla(ctx context.Context) (dto.SemillaResponse, error) {
	var out dto.SemillaResponse
	ctx, cancel := context.WithTimeout(ctx, timeoutRemoto)
	defer cancel()

	cats, err := s.categoriasRemotas.Listar(ctx)
	if err != nil {
		return out, &RemotoError{Op: "semilla categorias", Err: err}
	}
	existentes := map[string]bool{}
	for _, c := range cats {
		existentes[strings.ToLower(c.Nombre)] = true
	}
	for _, nombre := range model.CategoriasIniciales {
		if existentes[strings.ToLower(nombre)] {
			continue
		}
		if _, err := s.categoriasRemotas.Crear(ctx, model.Categoria{Nombre: nombre}); err != nil {
			return s.parcial(ctx, out, "categoria "+nombre, err)
		}
		out.Insertados++
	}

	ms, err := s.miembrosRemotos.Listar(ctx)
	if err != nil {
		return s.parcial(ctx, out, "listar miembros", err)
	}
	existentes = map[string]bool{}
	for _, m := range ms {
		existentes[strings.ToLower(m.Nombre)] = true
	}
	for _, nombre := range s.miembrosSemilla {
		nombre = strings.TrimSpace(nombre)
		if nombre == "" || existentes[strings.ToLower(nombre)] {
			continue
		}
		if _, err := s.miembrosRemotos.Crear(ctx, model.Miembro{Nombre: nombre, IsActive: true}); err != nil {
			return s.parcial(ctx, out, "miembro "+nombre, err)
		}
		existentes[strings.ToLower(nombre)] = true
		out.Insertados++
	}

	if _, err := s.Sincronizar(ctx); err != nil {
		out.Advertencia = mensajeDe(err)
	}
	log.Info().Int("insertados", out.Insertados).Msg("seed completed")
	return out, nil
}

// parcial reports a seeding loop stopped by err. Whatever was inserted so
// far is still pulled into the local cache.
func (s *adminService) parcial(ctx context.Context, out dto.SemillaResponse, paso string, err error) (dto.SemillaResponse, error) {
	log.Warn().Err(err).Str("paso", paso).Int("insertados", out.Insertados).Msg("seed stopped")
	out.Advertencia = mensajeDe(&RemotoError{Op: "semilla " + paso, Err: err})
	if out.Insertados > 0 {
		_, _ = s.Sincronizar(ctx)
	}
	return out, nil
}

func (s *adminService) Sincronizar(ctx context.Context) (dto.SincronizarResponse, error) {
	var out dto.SincronizarResponse
	var err error
	if out.Miembros, err = s.miembros.Sincronizar(ctx); err != nil {
		return out, err
	}
	if out.Categorias, err = s.categorias.Sincronizar(ctx); err != nil {
		return out, err
	}
	if out.Comisionados, err = s.comisionados.Sincronizar(ctx); err != nil {
		return out, err
	}
	log.Info().
		Int("miembros", out.Miembros).
		Int("categorias", out.Categorias).
		Int("comisionados", out.Comisionados).
		Msg("catalogues synced from remote")
	return out, nil
}
