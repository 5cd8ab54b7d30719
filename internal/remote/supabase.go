package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
)

// Supabase talks to a hosted Supabase project: PostgREST for tables
// (/rest/v1) and the Storage API (/storage/v1).
type Supabase struct {
	baseURL string
	key     string
}

func NewSupabase(baseURL, key string) *Supabase {
	return &Supabase{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
	}
}

// tablas and archivos build a fresh client per call: postgrest-go keeps
// marshal errors on the client and storage-go keeps upload options in its
// shared headers.
func (c *Supabase) tablas() *postgrest.Client {
	return postgrest.NewClient(c.baseURL+"/rest/v1", "public", map[string]string{
		"apikey":        c.key,
		"Authorization": "Bearer " + c.key,
	})
}

func (c *Supabase) archivos() *storage_go.Client {
	return storage_go.NewClient(c.baseURL+"/storage/v1", c.key, map[string]string{
		"apikey": c.key,
	})
}

// esperar runs fn and gives up when ctx ends. Neither client accepts a
// context, so a cancelled call is abandoned rather than aborted.
func esperar(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// errorArchivos maps Storage API errors onto the gateway's sentinels.
func errorArchivos(nombre string, err error) error {
	var se *storage_go.StorageError
	if !errors.As(err, &se) {
		return fmt.Errorf("supabase: %s: %w", nombre, err)
	}
	msg := strings.ToLower(se.Message)
	switch {
	case strings.Contains(msg, "bucket not found"):
		return fmt.Errorf("supabase: %w", ErrBucketNotFound)
	case strings.Contains(msg, "not found") || se.Status == 404:
		return fmt.Errorf("supabase: %s: %w", nombre, ErrNotFound)
	case se.Message == "":
		return fmt.Errorf("supabase: %s: respuesta de error sin detalle", nombre)
	}
	return fmt.Errorf("supabase: %s: %s", nombre, se.Message)
}

// ── Tables ────────────────────────────────────────────────────────────────────

func (c *Supabase) FetchItems(ctx context.Context, table string) ([]Item, error) {
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	var items []Item
	err := esperar(ctx, func() error {
		_, err := c.tablas().From(table).
			Select("*", "", false).
			Order("created_at", &postgrest.OrderOpts{Ascending: true}).
			ExecuteTo(&items)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("supabase: fetch %s: %w", table, err)
	}
	return items, nil
}

func (c *Supabase) AddItem(ctx context.Context, table string, fields Item) (Item, error) {
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	var rows []Item
	err := esperar(ctx, func() error {
		_, err := c.tablas().From(table).
			Insert(fields, false, "", "representation", "").
			ExecuteTo(&rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("supabase: write %s: %w", table, err)
	}
	return primeraFila(table, rows)
}

func (c *Supabase) UpdateItem(ctx context.Context, table, id string, fields Item) (Item, error) {
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	var rows []Item
	err := esperar(ctx, func() error {
		_, err := c.tablas().From(table).
			Update(fields, "representation", "").
			Eq("id", id).
			ExecuteTo(&rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("supabase: write %s: %w", table, err)
	}
	return primeraFila(table, rows)
}

func primeraFila(table string, rows []Item) (Item, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("supabase: %s: %w", table, ErrNotFound)
	}
	return rows[0], nil
}

func (c *Supabase) DeleteItem(ctx context.Context, table, id string) error {
	if err := validarTabla(table); err != nil {
		return err
	}
	err := esperar(ctx, func() error {
		_, _, err := c.tablas().From(table).
			Delete("minimal", "").
			Eq("id", id).
			Execute()
		return err
	})
	if err != nil {
		return fmt.Errorf("supabase: delete %s: %w", table, err)
	}
	return nil
}

// ── Storage ───────────────────────────────────────────────────────────────────

// Object paths are escaped here because storage-go joins them into the URL
// as given.

func (c *Supabase) UploadFile(ctx context.Context, bucket, name string, data []byte, upsert bool) error {
	tipo := tipoContenido(name)
	cache := "max-age=3600"
	err := esperar(ctx, func() error {
		_, err := c.archivos().UploadFile(bucket, url.PathEscape(name), bytes.NewReader(data), storage_go.FileOptions{
			ContentType:  &tipo,
			CacheControl: &cache,
			Upsert:       &upsert,
		})
		return err
	})
	if err != nil {
		return errorArchivos(name, err)
	}
	return nil
}

func (c *Supabase) ListFiles(ctx context.Context, bucket string) ([]FileInfo, error) {
	var objetos []storage_go.FileObject
	err := esperar(ctx, func() error {
		var err error
		objetos, err = c.archivos().ListFiles(bucket, "", storage_go.FileSearchOptions{
			Limit:         limiteListado,
			SortByOptions: storage_go.SortBy{Column: "created_at", Order: "desc"},
		})
		return err
	})
	if err != nil {
		return nil, errorArchivos(bucket, err)
	}
	files := make([]FileInfo, 0, len(objetos))
	for _, o := range objetos {
		// Folder placeholders have no created_at.
		if o.CreatedAt == "" {
			continue
		}
		creado, err := time.Parse(time.RFC3339, o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("supabase: created_at de %s: %w", o.Name, err)
		}
		files = append(files, FileInfo{Name: o.Name, CreatedAt: creado})
	}
	return files, nil
}

func (c *Supabase) PublicURL(bucket, name string) string {
	return c.archivos().GetPublicUrl(bucket, url.PathEscape(name)).SignedURL
}

func (c *Supabase) Download(ctx context.Context, bucket, name string) ([]byte, error) {
	var data []byte
	err := esperar(ctx, func() error {
		var err error
		data, err = c.archivos().DownloadFile(bucket, url.PathEscape(name))
		return err
	})
	if err != nil {
		return nil, errorArchivos(name, err)
	}
	return data, nil
}

var _ Gateway = (*Supabase)(nil)
