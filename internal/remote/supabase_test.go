package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage_go "github.com/supabase-community/storage-go"
)

func nuevoSupabase(t *testing.T, h http.HandlerFunc) *Supabase {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewSupabase(srv.URL+"/", "clave-anon")
}

// ── Tables ────────────────────────────────────────────────────────────────────

func TestSupabase_FetchItems(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/members", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "created_at.asc.nullslast", r.URL.Query().Get("order"))
		assert.Equal(t, "public", r.Header.Get("Accept-Profile"))
		assert.Equal(t, "clave-anon", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer clave-anon", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":"1","name":"Ana","is_active":true},{"id":2,"name":"Luis","is_active":false}]`))
	})

	items, err := sb.FetchItems(context.Background(), TablaMiembros)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ana", items[0].String("name"))
	assert.True(t, items[0].Bool("is_active"))
	assert.Equal(t, "2", items[1].ID(), "numeric ids read as strings")
}

func TestSupabase_TablaDesconocidaNoLlamaAlServidor(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})

	_, err := sb.FetchItems(context.Background(), "usuarios")
	assert.ErrorIs(t, err, ErrTablaInvalida)
	assert.True(t, ErrorDeDatos(err))
}

func TestSupabase_AddItem_DevuelveLaFilaCreada(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Primicias", body["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"c-1","name":"Primicias"}]`))
	})

	it, err := sb.AddItem(context.Background(), TablaCategorias, Item{"name": "Primicias"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", it.ID())
}

func TestSupabase_UpdateItem_SinFilasEsNotFound(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.m-9", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := sb.UpdateItem(context.Background(), TablaMiembros, "m-9", Item{"name": "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSupabase_ErrorDelServidor(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
	})

	_, err := sb.AddItem(context.Background(), TablaMiembros, Item{"name": "Ana"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	assert.False(t, ErrorDeDatos(err), "a rejected write still counts against the breaker")
}

func TestSupabase_DeleteItem(t *testing.T) {
	var metodo, ruta, filtro string
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		metodo, ruta, filtro = r.Method, r.URL.Path, r.URL.Query().Get("id")
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, sb.DeleteItem(context.Background(), TablaComisionados, "k 1"))
	assert.Equal(t, http.MethodDelete, metodo)
	assert.Equal(t, "/rest/v1/"+TablaComisionados, ruta)
	assert.Equal(t, "eq.k 1", filtro)
}

// ── Storage ───────────────────────────────────────────────────────────────────

func TestSupabase_UploadFile(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/reportes-semanales/Semana 2.xlsx", r.URL.Path)
		assert.Equal(t, "true", r.Header.Get("x-upsert"))
		assert.Equal(t, tiposContenido[".xlsx"], r.Header.Get("Content-Type"))
		assert.Equal(t, "max-age=3600", r.Header.Get("Cache-Control"))
		assert.Equal(t, "Bearer clave-anon", r.Header.Get("Authorization"))
		data, _ := io.ReadAll(r.Body)
		assert.Equal(t, "PK", string(data))
		_, _ = w.Write([]byte(`{"Key":"reportes-semanales/Semana 2.xlsx"}`))
	})

	require.NoError(t, sb.UploadFile(context.Background(), "reportes-semanales", "Semana 2.xlsx", []byte("PK"), true))
}

func TestSupabase_BucketInexistente(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"404","error":"Bucket not found","message":"Bucket not found"}`))
	})

	err := sb.UploadFile(context.Background(), "nope", "a.xlsx", []byte("x"), false)
	assert.ErrorIs(t, err, ErrBucketNotFound)
}

func TestSupabase_ListFiles_OmiteCarpetas(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/list/reportes-semanales", r.URL.Path)
		var lr storage_go.ListFileRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lr))
		assert.Equal(t, 100, lr.Limit)
		assert.Equal(t, "created_at", lr.SortByOptions.Column)
		assert.Equal(t, "desc", lr.SortByOptions.Order)
		_, _ = w.Write([]byte(`[
			{"name":"carpeta","created_at":null},
			{"name":"Semana_2_marzo_2025.xlsx","created_at":"2025-03-02T18:00:00Z"}
		]`))
	})

	files, err := sb.ListFiles(context.Background(), "reportes-semanales")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Semana_2_marzo_2025.xlsx", files[0].Name)
	assert.Equal(t, time.Date(2025, 3, 2, 18, 0, 0, 0, time.UTC), files[0].CreatedAt.UTC())
}

func TestSupabase_Download(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer clave-anon", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/storage/v1/object/b/Año 1.xlsx":
			_, _ = w.Write([]byte("contenido"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"statusCode":"404","error":"not_found","message":"Object not found"}`))
		}
	})

	data, err := sb.Download(context.Background(), "b", "Año 1.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))

	_, err = sb.Download(context.Background(), "b", "falta.xlsx")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSupabase_PublicURL(t *testing.T) {
	sb := NewSupabase("https://x.supabase.co/", "k")
	assert.Equal(t, "https://x.supabase.co/storage/v1/object/public/b/Semana%202.xlsx", sb.PublicURL("b", "Semana 2.xlsx"))
}

func TestSupabase_ContextoCanceladoNoLlamaAlServidor(t *testing.T) {
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sb.FetchItems(ctx, TablaMiembros)
	assert.ErrorIs(t, err, context.Canceled)
	err = sb.UploadFile(ctx, "b", "a.xlsx", []byte("x"), false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSupabase_ContextoVencidoDuranteLaLlamada(t *testing.T) {
	liberar := make(chan struct{})
	sb := nuevoSupabase(t, func(w http.ResponseWriter, r *http.Request) {
		<-liberar
		_, _ = w.Write([]byte(`[]`))
	})
	t.Cleanup(func() { close(liberar) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := sb.FetchItems(ctx, TablaMiembros)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
