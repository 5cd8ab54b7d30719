package repository

import (
	"context"

	"ofrendas/internal/model"
	"ofrendas/internal/store"
)

// AjustesRepository holds the single-value settings. Reads fall back to
// the defaults given at construction when a key was never written.
type AjustesRepository interface {
	Formulas(ctx context.Context) (model.Formulas, error)
	GuardarFormulas(ctx context.Context, f model.Formulas) error
	Iglesia(ctx context.Context) (model.InfoIglesia, error)
	GuardarIglesia(ctx context.Context, i model.InfoIglesia) error
	Tema(ctx context.Context) (model.Tema, error)
	GuardarTema(ctx context.Context, t model.Tema) error
}

type ajustesRepository struct {
	st       store.Store
	formulas model.Formulas
}

func NewAjustesRepository(st store.Store, formulasPorDefecto model.Formulas) AjustesRepository {
	return &ajustesRepository{st: st, formulas: formulasPorDefecto}
}

func (r *ajustesRepository) Formulas(ctx context.Context) (model.Formulas, error) {
	f := r.formulas
	if _, err := r.st.Get(ctx, store.ClaveFormulas, &f); err != nil {
		return model.Formulas{}, err
	}
	return f, nil
}

func (r *ajustesRepository) GuardarFormulas(ctx context.Context, f model.Formulas) error {
	return r.st.Set(ctx, store.ClaveFormulas, f)
}

func (r *ajustesRepository) Iglesia(ctx context.Context) (model.InfoIglesia, error) {
	var i model.InfoIglesia
	if _, err := r.st.Get(ctx, store.ClaveIglesia, &i); err != nil {
		return model.InfoIglesia{}, err
	}
	return i, nil
}

func (r *ajustesRepository) GuardarIglesia(ctx context.Context, i model.InfoIglesia) error {
	return r.st.Set(ctx, store.ClaveIglesia, i)
}

func (r *ajustesRepository) Tema(ctx context.Context) (model.Tema, error) {
	t := model.TemaClaro
	if _, err := r.st.Get(ctx, store.ClaveTema, &t); err != nil {
		return "", err
	}
	return t, nil
}

func (r *ajustesRepository) GuardarTema(ctx context.Context, t model.Tema) error {
	return r.st.Set(ctx, store.ClaveTema, t)
}
