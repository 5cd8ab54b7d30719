// Package app is the composition root shared by the HTTP server and the
// CLI: it opens the local store and the remote gateway chosen by the
// configuration and wires repositories into services.
package app

import (
	"context"
	"errors"
	"fmt"

	"ofrendas/internal/config"
	"ofrendas/internal/infra"
	"ofrendas/internal/model"
	"ofrendas/internal/remote"
	"ofrendas/internal/repository"
	"ofrendas/internal/service"
	"ofrendas/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// App holds the wired services. Close releases the store and remote clients.
type App struct {
	Store  store.Store
	Remoto *remote.Guarded

	Registros    service.RegistroService
	Informes     service.InformeService
	Nube         service.NubeService
	Miembros     service.MiembroService
	Categorias   service.CategoriaService
	Comisionados service.ComisionadoService
	Ajustes      service.AjustesService
	Admin        service.AdminService

	cerrar []func() error
}

// New builds the application from cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}
	ok := false
	defer func() {
		if !ok {
			_ = a.Close()
		}
	}()

	formulas, err := formulasPorDefecto(cfg)
	if err != nil {
		return nil, err
	}

	st, err := a.abrirStore(cfg)
	if err != nil {
		return nil, err
	}

	gw, err := a.abrirRemoto(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.ensamblar(cfg, st, gw, formulas)

	ok = true
	return a, nil
}

// Ensamblar wires the services over an already opened store and gateway.
// The caller keeps ownership of both.
func Ensamblar(cfg *config.Config, st store.Store, gw remote.Gateway) (*App, error) {
	formulas, err := formulasPorDefecto(cfg)
	if err != nil {
		return nil, err
	}
	a := &App{}
	a.ensamblar(cfg, st, gw, formulas)
	return a, nil
}

func (a *App) ensamblar(cfg *config.Config, st store.Store, gw remote.Gateway, formulas model.Formulas) {
	a.Store = st
	a.Remoto = remote.NewGuarded(gw, infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: cfg.CBFailureThreshold,
		OpenTimeout:      cfg.CBOpenTimeout,
		Ignore:           remote.ErrorDeDatos,
	}))

	// ── Repositories ─────────────────────────────────────────────────────────
	registroRepo := repository.NewRegistroRepository(st)
	informeRepo := repository.NewInformeRepository(st)
	ajustesRepo := repository.NewAjustesRepository(st, formulas)
	subidaRepo := repository.NewSubidaRepository(st)
	miembros := repository.NewLista[model.Miembro](st, store.ClaveMiembros)
	categorias := repository.NewLista[model.Categoria](st, store.ClaveCategorias)
	comisionados := repository.NewLista[model.Comisionado](st, store.ClaveComisionados)

	miembrosRemotos := repository.NewTablaRemota(a.Remoto, repository.MapeoMiembros)
	categoriasRemotas := repository.NewTablaRemota(a.Remoto, repository.MapeoCategorias)
	comisionadosRemotos := repository.NewTablaRemota(a.Remoto, repository.MapeoComisionados)

	// ── Services ─────────────────────────────────────────────────────────────
	pub := service.NewPublicador(a.Remoto, cfg.WeeklyBucket, cfg.ChurchName, categorias, subidaRepo)
	a.Registros = service.NewRegistroService(registroRepo, ajustesRepo, miembros, categorias, pub)
	a.Informes = service.NewInformeService(registroRepo, informeRepo, ajustesRepo, categorias, cfg.ChurchName)
	a.Nube = service.NewNubeService(a.Remoto, cfg.WeeklyBucket, registroRepo, ajustesRepo, miembros, categorias, subidaRepo)
	a.Miembros = service.NewMiembroService(miembros, miembrosRemotos)
	a.Categorias = service.NewCategoriaService(categorias, categoriasRemotas)
	a.Comisionados = service.NewComisionadoService(comisionados, comisionadosRemotos)
	a.Ajustes = service.NewAjustesService(ajustesRepo)
	a.Admin = service.NewAdminService(miembrosRemotos, categoriasRemotas, a.Miembros, a.Categorias, a.Comisionados, cfg.SeedMembers)
}

// Close releases every resource opened by New, in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.cerrar) - 1; i >= 0; i-- {
		if err := a.cerrar[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.cerrar = nil
	return errors.Join(errs...)
}

func formulasPorDefecto(cfg *config.Config) (model.Formulas, error) {
	pct, err := decimal.NewFromString(cfg.DefaultDiezmoPct)
	if err != nil {
		return model.Formulas{}, fmt.Errorf("DEFAULT_DIEZMO_PCT: %w", err)
	}
	umbral, err := decimal.NewFromString(cfg.DefaultRemanenteUmbral)
	if err != nil {
		return model.Formulas{}, fmt.Errorf("DEFAULT_REMANENTE_UMBRAL: %w", err)
	}
	return model.Formulas{DiezmoPorcentaje: pct, UmbralRemanente: umbral}, nil
}

func (a *App) abrirStore(cfg *config.Config) (store.Store, error) {
	switch cfg.LocalStore {
	case "sqlite":
		st, err := store.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		a.cerrar = append(a.cerrar, st.Close)
		log.Info().Str("path", cfg.SQLitePath).Msg("local store: sqlite")
		return st, nil
	case "redis":
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.cerrar = append(a.cerrar, rdb.Close)
		log.Info().Msg("local store: redis")
		return store.NewRedis(rdb, "ofrendas:"), nil
	case "memory":
		log.Warn().Msg("local store: memory, nothing survives a restart")
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("LOCAL_STORE %q: expected sqlite, redis or memory", cfg.LocalStore)
	}
}

func (a *App) abrirRemoto(ctx context.Context, cfg *config.Config) (remote.Gateway, error) {
	var (
		memoria  *remote.Memory
		supabase *remote.Supabase
	)
	enMemoria := func() *remote.Memory {
		if memoria == nil {
			memoria = remote.NewMemory()
		}
		return memoria
	}
	deSupabase := func() (*remote.Supabase, error) {
		if supabase == nil {
			if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
				return nil, errors.New("SUPABASE_URL and SUPABASE_KEY are required")
			}
			supabase = remote.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey)
		}
		return supabase, nil
	}

	var tables remote.Tables
	switch cfg.RemoteBackend {
	case "supabase":
		sb, err := deSupabase()
		if err != nil {
			return nil, err
		}
		tables = sb
	case "postgres":
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			a.cerrar = append(a.cerrar, sqlDB.Close)
		}
		tables = remote.NewPostgresTables(db)
	case "memory":
		tables = enMemoria()
	default:
		return nil, fmt.Errorf("REMOTE_BACKEND %q: expected supabase, postgres or memory", cfg.RemoteBackend)
	}

	var files remote.Files
	switch cfg.StorageBackend {
	case "supabase":
		sb, err := deSupabase()
		if err != nil {
			return nil, err
		}
		files = sb
	case "gcs":
		g, err := remote.NewGCSFiles(ctx, cfg.GCSBucketPrefix)
		if err != nil {
			return nil, err
		}
		a.cerrar = append(a.cerrar, g.Close)
		files = g
	case "memory":
		files = enMemoria()
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND %q: expected supabase, gcs or memory", cfg.StorageBackend)
	}

	log.Info().Str("tables", cfg.RemoteBackend).Str("files", cfg.StorageBackend).Msg("remote gateway ready")
	return remote.Compose(tables, files), nil
}
