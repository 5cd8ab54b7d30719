// Package remote is the client side of the hosted backend: table CRUD for
// members, categories and comisionados, and object storage for the weekly
// workbooks. Callers translate between the remote snake_case columns and
// the domain model.
package remote

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

// Remote tables.
const (
	TablaMiembros     = "members"
	TablaCategorias   = "categories"
	TablaComisionados = "comisionados"
)

var tablasConocidas = map[string]bool{
	TablaMiembros:     true,
	TablaCategorias:   true,
	TablaComisionados: true,
}

var (
	ErrNotFound       = errors.New("not found")
	ErrBucketNotFound = errors.New("bucket not found")
	ErrTablaInvalida  = errors.New("unknown table")
)

// Item is one remote row, keyed by column name.
type Item map[string]any

// ID returns the row id as a string whatever its remote type.
func (i Item) ID() string { return i.String("id") }

func (i Item) String(col string) string {
	v, ok := i[col]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (i Item) Bool(col string) bool {
	b, _ := i[col].(bool)
	return b
}

// FileInfo describes a stored object.
type FileInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Tables is the table half of the gateway.
type Tables interface {
	FetchItems(ctx context.Context, table string) ([]Item, error)
	AddItem(ctx context.Context, table string, fields Item) (Item, error)
	UpdateItem(ctx context.Context, table, id string, fields Item) (Item, error)
	DeleteItem(ctx context.Context, table, id string) error
}

// Files is the object-storage half of the gateway.
type Files interface {
	UploadFile(ctx context.Context, bucket, name string, data []byte, upsert bool) error
	// ListFiles returns at most 100 objects, newest first.
	ListFiles(ctx context.Context, bucket string) ([]FileInfo, error)
	PublicURL(bucket, name string) string
	Download(ctx context.Context, bucket, name string) ([]byte, error)
}

// Gateway is the whole hosted backend as seen by the services.
type Gateway interface {
	Tables
	Files
}

type compuesto struct {
	Tables
	Files
}

// Compose joins independent table and file backends into one Gateway.
func Compose(t Tables, f Files) Gateway {
	return compuesto{Tables: t, Files: f}
}

func validarTabla(table string) error {
	if !tablasConocidas[table] {
		return fmt.Errorf("%w: %q", ErrTablaInvalida, table)
	}
	return nil
}

const limiteListado = 100

var tiposContenido = map[string]string{
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".pdf":  "application/pdf",
	".json": "application/json",
}

func tipoContenido(name string) string {
	if ct, ok := tiposContenido[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ErrorDeDatos reports errors the backend answered with, as opposed to
// failing to answer. Used as the circuit breaker's Ignore filter.
func ErrorDeDatos(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrBucketNotFound) || errors.Is(err, ErrTablaInvalida)
}
