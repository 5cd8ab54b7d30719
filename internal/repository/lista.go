package repository

import (
	"context"
	"errors"
	"sync"

	"ofrendas/internal/store"
)

// ErrNotFound is returned by lookups by id.
var ErrNotFound = errors.New("not found")

// Lista is a JSON array kept under one local store key. Every write
// replaces the whole document; Modificar serializes read-modify-write
// cycles on the same Lista.
type Lista[T any] struct {
	mu    sync.Mutex
	st    store.Store
	clave string
}

func NewLista[T any](st store.Store, clave string) *Lista[T] {
	return &Lista[T]{st: st, clave: clave}
}

// Cargar returns the stored items. found is false when the key was never
// written, which lets callers tell "empty" apart from "not initialised".
func (l *Lista[T]) Cargar(ctx context.Context) (items []T, found bool, err error) {
	found, err = l.st.Get(ctx, l.clave, &items)
	if err != nil {
		return nil, false, err
	}
	if items == nil {
		items = []T{}
	}
	return items, found, nil
}

func (l *Lista[T]) Guardar(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return l.st.Set(ctx, l.clave, items)
}

// Modificar loads the list, applies fn and stores the result. Nothing is
// written when fn returns an error.
func (l *Lista[T]) Modificar(ctx context.Context, fn func([]T) ([]T, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	items, _, err := l.Cargar(ctx)
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return l.Guardar(ctx, items)
}
