package repository

import (
	"context"
	"sort"

	"ofrendas/internal/model"
	"ofrendas/internal/store"
)

const maxSubidas = 200

// SubidaRepository is the upload history, newest first, capped at 200 entries.
type SubidaRepository interface {
	Listar(ctx context.Context) ([]model.Subida, error)
	Registrar(ctx context.Context, s model.Subida) error
}

type subidaRepository struct{ lista *Lista[model.Subida] }

func NewSubidaRepository(st store.Store) SubidaRepository {
	return &subidaRepository{lista: NewLista[model.Subida](st, store.ClaveSubidas)}
}

func (r *subidaRepository) Listar(ctx context.Context) ([]model.Subida, error) {
	list, _, err := r.lista.Cargar(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return list, nil
}

func (r *subidaRepository) Registrar(ctx context.Context, s model.Subida) error {
	return r.lista.Modificar(ctx, func(list []model.Subida) ([]model.Subida, error) {
		list = append(list, s)
		sort.SliceStable(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
		if len(list) > maxSubidas {
			list = list[:maxSubidas]
		}
		return list, nil
	})
}
