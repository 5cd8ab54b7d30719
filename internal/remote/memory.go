package remote

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type archivo struct {
	data    []byte
	created time.Time
}

// Memory is an in-process Gateway. It backs offline development
// (REMOTE_BACKEND=memory) and the service tests; Fallar injects errors
// per operation name.
type Memory struct {
	mu      sync.Mutex
	tablas  map[string][]Item
	buckets map[string]map[string]archivo
	fallos  map[string]error
	ahora   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		tablas:  make(map[string][]Item),
		buckets: make(map[string]map[string]archivo),
		fallos:  make(map[string]error),
		ahora:   time.Now,
	}
}

// Fallar makes every later call of op ("FetchItems", "AddItem",
// "UpdateItem", "DeleteItem", "UploadFile", "ListFiles", "Download")
// return err. A nil err clears the failure.
func (m *Memory) Fallar(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fallos, op)
		return
	}
	m.fallos[op] = err
}

func (m *Memory) fallo(op string) error {
	return m.fallos[op]
}

func copiar(i Item) Item {
	c := make(Item, len(i))
	for k, v := range i {
		c[k] = v
	}
	return c
}

func (m *Memory) FetchItems(_ context.Context, table string) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fallo("FetchItems"); err != nil {
		return nil, err
	}
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(m.tablas[table]))
	for _, it := range m.tablas[table] {
		out = append(out, copiar(it))
	}
	return out, nil
}

func (m *Memory) AddItem(_ context.Context, table string, fields Item) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fallo("AddItem"); err != nil {
		return nil, err
	}
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	it := copiar(fields)
	if it.ID() == "" {
		it["id"] = uuid.NewString()
	}
	it["created_at"] = m.ahora()
	m.tablas[table] = append(m.tablas[table], it)
	return copiar(it), nil
}

func (m *Memory) UpdateItem(_ context.Context, table, id string, fields Item) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fallo("UpdateItem"); err != nil {
		return nil, err
	}
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	for _, it := range m.tablas[table] {
		if it.ID() == id {
			for k, v := range fields {
				it[k] = v
			}
			return copiar(it), nil
		}
	}
	return nil, fmt.Errorf("memory: %s %s: %w", table, id, ErrNotFound)
}

func (m *Memory) DeleteItem(_ context.Context, table, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fallo("DeleteItem"); err != nil {
		return err
	}
	if err := validarTabla(table); err != nil {
		return err
	}
	filas := m.tablas[table]
	for i, it := range filas {
		if it.ID() == id {
			m.tablas[table] = append(filas[:i], filas[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) UploadFile(_ context.Context, bucket, name string, data []byte, upsert bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fallo("UploadFile"); err != nil {
		return err
	}
	b, ok := m.buckets[bucket]
	if !ok {
		b = make(map[string]archivo)
		m.buckets[bucket] = b
	}
	if _, existe := b[name]; existe && !upsert {
		return fmt.Errorf("memory: %s/%s: the resource already exists", bucket, name)
	}
	b[name] = archivo{data: append([]byte(nil), data...), created: m.ahora()}
	return nil
}

func (m *Memory) ListFiles(_ context.Context, bucket string) ([]FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fallo("ListFiles"); err != nil {
		return nil, err
	}
	files := make([]FileInfo, 0, len(m.buckets[bucket]))
	for name, a := range m.buckets[bucket] {
		files = append(files, FileInfo{Name: name, CreatedAt: a.created})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].CreatedAt.Equal(files[j].CreatedAt) {
			return files[i].Name < files[j].Name
		}
		return files[i].CreatedAt.After(files[j].CreatedAt)
	})
	if len(files) > limiteListado {
		files = files[:limiteListado]
	}
	return files, nil
}

func (m *Memory) PublicURL(bucket, name string) string {
	return "memory://" + bucket + "/" + url.PathEscape(name)
}

func (m *Memory) Download(_ context.Context, bucket, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fallo("Download"); err != nil {
		return nil, err
	}
	a, ok := m.buckets[bucket][name]
	if !ok {
		return nil, fmt.Errorf("memory: %s/%s: %w", bucket, name, ErrNotFound)
	}
	return append([]byte(nil), a.data...), nil
}

var _ Gateway = (*Memory)(nil)
