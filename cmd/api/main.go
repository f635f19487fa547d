package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linedesk/internal/auth"
	"linedesk/internal/config"
	"linedesk/internal/editors"
	"linedesk/internal/httpapi"
	"linedesk/internal/inventory"
	"linedesk/internal/reporting"
	"linedesk/pkg/logger"
	"linedesk/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	repo, cleanup, err := openStore(rootCtx, cfg, log)
	if err != nil {
		log.Error("store init failed", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	var locks *utils.EditorLocks
	if cfg.UsesRedis() {
		rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
		if err != nil {
			log.Error("redis init failed", "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		locks = utils.NewEditorLocks(rdb, cfg.Redis.EditorLockTTL)
	}

	h := httpapi.Handlers{
		Auth:    authManager,
		Lines:   inventory.NewService(repo),
		Editors: editors.NewService(repo),
		Reports: reporting.NewService(repo),
		Locks:   locks,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerRoutes(r, h, auth.RequireAccessToken(authManager))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env, "store", cfg.Store.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}

// openStore builds the line repository for the configured backend. A fresh
// postgres store is seeded with the fixture dataset so both backends start
// from the same data.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (inventory.Repository, func(), error) {
	if !cfg.UsesPostgres() {
		repo := inventory.NewMemoryRepo(inventory.FixtureLines(), inventory.FixtureGroups())
		return repo, func() {}, nil
	}

	db, err := utils.OpenPostgres(ctx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
	if err != nil {
		return nil, nil, err
	}
	repo := inventory.NewPostgresRepo(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if err := repo.SeedIfEmpty(ctx, inventory.FixtureLines(), inventory.FixtureGroups()); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	log.Info("postgres store ready")
	return repo, func() { _ = db.Close() }, nil
}
