package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostgresTables serves the remote tables straight from a Postgres
// database (a self-hosted instance or the Supabase database itself).
// Rows travel as plain maps; the schema is created by infra.NewDatabase.
type PostgresTables struct {
	db *gorm.DB
}

func NewPostgresTables(db *gorm.DB) *PostgresTables {
	return &PostgresTables{db: db}
}

func (r *PostgresTables) FetchItems(ctx context.Context, table string) ([]Item, error) {
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Table(table).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("postgres: fetch %s: %w", table, err)
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item(row))
	}
	return items, nil
}

func (r *PostgresTables) AddItem(ctx context.Context, table string, fields Item) (Item, error) {
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	row := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		row[k] = v
	}
	if _, ok := row["id"]; !ok {
		row["id"] = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Table(table).Create(row).Error; err != nil {
		return nil, fmt.Errorf("postgres: insert %s: %w", table, err)
	}
	return r.obtener(ctx, table, fmt.Sprint(row["id"]))
}

func (r *PostgresTables) UpdateItem(ctx context.Context, table, id string, fields Item) (Item, error) {
	if err := validarTabla(table); err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(map[string]interface{}(fields))
	if res.Error != nil {
		return nil, fmt.Errorf("postgres: update %s: %w", table, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("postgres: %s %s: %w", table, id, ErrNotFound)
	}
	return r.obtener(ctx, table, id)
}

func (r *PostgresTables) DeleteItem(ctx context.Context, table, id string) error {
	if err := validarTabla(table); err != nil {
		return err
	}
	// table is whitelisted by validarTabla.
	if err := r.db.WithContext(ctx).Exec("DELETE FROM "+table+" WHERE id = ?", id).Error; err != nil {
		return fmt.Errorf("postgres: delete %s: %w", table, err)
	}
	return nil
}

func (r *PostgresTables) obtener(ctx context.Context, table, id string) (Item, error) {
	row := map[string]interface{}{}
	err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("postgres: %s %s: %w", table, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: read %s: %w", table, err)
	}
	return Item(row), nil
}

var _ Tables = (*PostgresTables)(nil)
