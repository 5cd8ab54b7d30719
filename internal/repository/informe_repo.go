package repository

import (
	"context"
	"sort"

	"ofrendas/internal/model"
	"ofrendas/internal/store"
)

// InformeRepository persists monthly report drafts, one per (month, year).
type InformeRepository interface {
	// Listar returns reports newest period first.
	Listar(ctx context.Context) ([]model.InformeMensual, error)
	Obtener(ctx context.Context, id string) (*model.InformeMensual, error)
	Guardar(ctx context.Context, i model.InformeMensual) error
	Eliminar(ctx context.Context, id string) (bool, error)
}

type informeRepository struct{ lista *Lista[model.InformeMensual] }

func NewInformeRepository(st store.Store) InformeRepository {
	return &informeRepository{lista: NewLista[model.InformeMensual](st, store.ClaveInformes)}
}

func (r *informeRepository) Listar(ctx context.Context) ([]model.InformeMensual, error) {
	list, _, err := r.lista.Cargar(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Anio != list[j].Anio {
			return list[i].Anio > list[j].Anio
		}
		return list[i].Mes > list[j].Mes
	})
	return list, nil
}

func (r *informeRepository) Obtener(ctx context.Context, id string) (*model.InformeMensual, error) {
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

func (r *informeRepository) Guardar(ctx context.Context, inf model.InformeMensual) error {
	return r.lista.Modificar(ctx, func(list []model.InformeMensual) ([]model.InformeMensual, error) {
		for i := range list {
			if list[i].ID == inf.ID {
				list[i] = inf
				return list, nil
			}
		}
		return append(list, inf), nil
	})
}

func (r *informeRepository) Eliminar(ctx context.Context, id string) (bool, error) {
	eliminado := false
	err := r.lista.Modificar(ctx, func(list []model.InformeMensual) ([]model.InformeMensual, error) {
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
