package remote

import (
	"context"

	"ofrendas/internal/infra"
)

// Guarded routes every remote call through a circuit breaker so that an
// offline device fails fast instead of waiting out each HTTP timeout.
type Guarded struct {
	inner Gateway
	cb    *infra.CircuitBreaker
}

func NewGuarded(inner Gateway, cb *infra.CircuitBreaker) *Guarded {
	return &Guarded{inner: inner, cb: cb}
}

// State reports the breaker state for /health.
func (g *Guarded) State() infra.CBState { return g.cb.State() }

func (g *Guarded) FetchItems(ctx context.Context, table string) (items []Item, err error) {
	err = g.cb.Execute(func() error {
		items, err = g.inner.FetchItems(ctx, table)
		return err
	})
	return items, err
}

func (g *Guarded) AddItem(ctx context.Context, table string, fields Item) (item Item, err error) {
	err = g.cb.Execute(func() error {
		item, err = g.inner.AddItem(ctx, table, fields)
		return err
	})
	return item, err
}

func (g *Guarded) UpdateItem(ctx context.Context, table, id string, fields Item) (item Item, err error) {
	err = g.cb.Execute(func() error {
		item, err = g.inner.UpdateItem(ctx, table, id, fields)
		return err
	})
	return item, err
}

func (g *Guarded) DeleteItem(ctx context.Context, table, id string) error {
	return g.cb.Execute(func() error {
		return g.inner.DeleteItem(ctx, table, id)
	})
}

func (g *Guarded) UploadFile(ctx context.Context, bucket, name string, data []byte, upsert bool) error {
	return g.cb.Execute(func() error {
		return g.inner.UploadFile(ctx, bucket, name, data, upsert)
	})
}

func (g *Guarded) ListFiles(ctx context.Context, bucket string) (files []FileInfo, err error) {
	err = g.cb.Execute(func() error {
		files, err = g.inner.ListFiles(ctx, bucket)
		return err
	})
	return files, err
}

func (g *Guarded) PublicURL(bucket, name string) string {
	return g.inner.PublicURL(bucket, name)
}

func (g *Guarded) Download(ctx context.Context, bucket, name string) (data []byte, err error) {
	err = g.cb.Execute(func() error {
		data, err = g.inner.Download(ctx, bucket, name)
		return err
	})
	return data, err
}

var _ Gateway = (*Guarded)(nil)
