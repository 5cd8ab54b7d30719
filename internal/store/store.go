// Package store is the device-local persistence: a JSON key-value store
// addressed by fixed keys. Local state is authoritative; the remote
// gateway is only ever a best-effort copy.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Fixed keys.
const (
	ClaveRegistros    = "app_weekly_records"
	ClaveFormulas     = "app_formulas"
	ClaveInformes     = "app_monthly_reports"
	ClaveIglesia      = "app_church_info"
	ClaveTema         = "app_theme"
	ClaveMiembros     = "app_members"
	ClaveCategorias   = "app_categories"
	ClaveComisionados = "app_comisionados"
	ClaveSubidas      = "app_upload_history"
)

// Store reads and writes JSON documents by key.
type Store interface {
	// Get decodes the value under key into dest. found is false when the
	// key has never been set; dest is left untouched in that case.
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	Set(ctx context.Context, key string, value any) error
	Close() error
}

func encode(key string, value any) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("store: encode %s: %w", key, err)
	}
	return b, nil
}

func decode(key string, raw []byte, dest any) error {
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}
