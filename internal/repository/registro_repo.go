package repository

import (
	"context"
	"sort"

	"ofrendas/internal/model"
	"ofrendas/internal/store"
)

// RegistroRepository persists saved weekly records.
type RegistroRepository interface {
	// Listar returns the records newest date first.
	Listar(ctx context.Context) ([]model.RegistroSemanal, error)
	Obtener(ctx context.Context, id string) (*model.RegistroSemanal, error)
	// Upsert replaces the record with the same id in place, or appends it.
	Upsert(ctx context.Context, r model.RegistroSemanal) error
	// Eliminar reports whether a record was removed.
	Eliminar(ctx context.Context, id string) (bool, error)
}

type registroRepository struct{ lista *Lista[model.RegistroSemanal] }

func NewRegistroRepository(st store.Store) RegistroRepository {
	return &registroRepository{lista: NewLista[model.RegistroSemanal](st, store.ClaveRegistros)}
}

func (r *registroRepository) Listar(ctx context.Context) ([]model.RegistroSemanal, error) {
	list, _, err := r.lista.Cargar(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[j].Antes(list[i]) })
	return list, nil
}

func (r *registroRepository) Obtener(ctx context.Context, id string) (*model.RegistroSemanal, error) {
	list, _, err := r.lista.Cargar(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *registroRepository) Upsert(ctx context.Context, reg model.RegistroSemanal) error {
	return r.lista.Modificar(ctx, func(list []model.RegistroSemanal) ([]model.RegistroSemanal, error) {
		for i := range list {
			if list[i].ID == reg.ID {
				list[i] = reg
				return list, nil
			}
		}
		return append(list, reg), nil
	})
}

func (r *registroRepository) Eliminar(ctx context.Context, id string) (bool, error) {
	eliminado := false
	err := r.lista.Modificar(ctx, func(list []model.RegistroSemanal) ([]model.RegistroSemanal, error) {
		for i := range list {
			if list[i].ID == id {
				eliminado = true
				return append(list[:i], list[i+1:]...), nil
			}
		}
		return list, nil
	})
	return eliminado, err
}
