package service

import (
	"context"
	"sort"
	"strings"

	"ofrendas/internal/model"
	"ofrendas/internal/repository"

	"github.com/google/uuid"
)

// cargarCategorias returns the local category set sorted by name. The
// first read of a fresh installation stores the initial categories.
func cargarCategorias(ctx context.Context, lista *repository.Lista[model.Categoria]) ([]model.Categoria, error) {
	cats, found, err := lista.Cargar(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		cats = make([]model.Categoria, 0, len(model.CategoriasIniciales))
		for _, n := range model.CategoriasIniciales {
			cats = append(cats, model.Categoria{ID: uuid.NewString(), Nombre: n})
		}
		if err := lista.Guardar(ctx, cats); err != nil {
			return nil, err
		}
	}
	ordenarCategorias(cats)
	return cats, nil
}

func nombresCategorias(ctx context.Context, lista *repository.Lista[model.Categoria]) ([]string, error) {
	cats, err := cargarCategorias(ctx, lista)
	if err != nil {
		return nil, err
	}
	nombres := make([]string, 0, len(cats))
	for _, c := range cats {
		nombres = append(nombres, c.Nombre)
	}
	return nombres, nil
}

func ordenarCategorias(cats []model.Categoria) {
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Nombre < cats[j].Nombre })
}

func ordenarMiembros(ms []model.Miembro) {
	sort.SliceStable(ms, func(i, j int) bool {
		return strings.ToLower(ms[i].Nombre) < strings.ToLower(ms[j].Nombre)
	})
}

func buscarMiembro(ms []model.Miembro, id string) (model.Miembro, bool) {
	for _, m := range ms {
		if m.ID == id {
			return m, true
		}
	}
	return model.Miembro{}, false
}

func buscarMiembroPorNombre(ms []model.Miembro, nombre string) (model.Miembro, bool) {
	for _, m := range ms {
		if strings.EqualFold(strings.TrimSpace(m.Nombre), strings.TrimSpace(nombre)) {
			return m, true
		}
	}
	return model.Miembro{}, false
}
