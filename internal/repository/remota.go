package repository

import (
	"context"
	"fmt"

	"ofrendas/internal/model"
	"ofrendas/internal/remote"
)

// Mapeo translates between a remote row and a domain value.
type Mapeo[T any] struct {
	Tabla string
	Desde func(remote.Item) T
	Hacia func(T) remote.Item
}

// TablaRemota is typed CRUD over one remote table.
type TablaRemota[T any] struct {
	gw remote.Tables
	m  Mapeo[T]
}

func NewTablaRemota[T any](gw remote.Tables, m Mapeo[T]) *TablaRemota[T] {
	return &TablaRemota[T]{gw: gw, m: m}
}

func (t *TablaRemota[T]) Listar(ctx context.Context) ([]T, error) {
	items, err := t.gw.FetchItems(ctx, t.m.Tabla)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.m.Tabla, err)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, t.m.Desde(it))
	}
	return out, nil
}

func (t *TablaRemota[T]) Crear(ctx context.Context, v T) (T, error) {
	it, err := t.gw.AddItem(ctx, t.m.Tabla, t.m.Hacia(v))
	if err != nil {
		var cero T
		return cero, fmt.Errorf("%s: %w", t.m.Tabla, err)
	}
	return t.m.Desde(it), nil
}

func (t *TablaRemota[T]) Actualizar(ctx context.Context, id string, v T) (T, error) {
	it, err := t.gw.UpdateItem(ctx, t.m.Tabla, id, t.m.Hacia(v))
	if err != nil {
		var cero T
		return cero, fmt.Errorf("%s: %w", t.m.Tabla, err)
	}
	return t.m.Desde(it), nil
}

func (t *TablaRemota[T]) Eliminar(ctx context.Context, id string) error {
	if err := t.gw.DeleteItem(ctx, t.m.Tabla, id); err != nil {
		return fmt.Errorf("%s: %w", t.m.Tabla, err)
	}
	return nil
}

// ── Table mappings ────────────────────────────────────────────────────────────
// Hacia sends the id only when set, so rows created locally keep it remotely.

func conID(id string, it remote.Item) remote.Item {
	if id != "" {
		it["id"] = id
	}
	return it
}

var MapeoMiembros = Mapeo[model.Miembro]{
	Tabla: remote.TablaMiembros,
	Desde: func(it remote.Item) model.Miembro {
		return model.Miembro{ID: it.ID(), Nombre: it.String("name"), IsActive: it.Bool("is_active")}
	},
	Hacia: func(m model.Miembro) remote.Item {
		return conID(m.ID, remote.Item{"name": m.Nombre, "is_active": m.IsActive})
	},
}

var MapeoCategorias = Mapeo[model.Categoria]{
	Tabla: remote.TablaCategorias,
	Desde: func(it remote.Item) model.Categoria {
		return model.Categoria{ID: it.ID(), Nombre: it.String("name")}
	},
	Hacia: func(c model.Categoria) remote.Item {
		return conID(c.ID, remote.Item{"name": c.Nombre})
	},
}

var MapeoComisionados = Mapeo[model.Comisionado]{
	Tabla: remote.TablaComisionados,
	Desde: func(it remote.Item) model.Comisionado {
		return model.Comisionado{ID: it.ID(), Nombre: it.String("nombre"), Cargo: it.String("cargo")}
	},
	Hacia: func(c model.Comisionado) remote.Item {
		return conID(c.ID, remote.Item{"nombre": c.Nombre, "cargo": c.Cargo})
	},
}
