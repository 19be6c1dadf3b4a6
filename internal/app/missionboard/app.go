package missionboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/asanbekov/missionboard/internal/cache"
	"github.com/asanbekov/missionboard/internal/config"
	"github.com/asanbekov/missionboard/internal/http/handlers/health"
	"github.com/asanbekov/missionboard/internal/lib/jwt"
	"github.com/asanbekov/missionboard/internal/migrations"
	authservice "github.com/asanbekov/missionboard/internal/services/auth"
	"github.com/asanbekov/missionboard/internal/services/matching"
	missionservice "github.com/asanbekov/missionboard/internal/services/mission"
	"github.com/asanbekov/missionboard/internal/services/privilege"
	"github.com/asanbekov/missionboard/internal/services/usagelimit"
	"github.com/asanbekov/missionboard/internal/storage/repository"
)

// App объединяет HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New собирает приложение: хранилище, миграции, кеш, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	privilegeStore := privilege.NewStore(db, cacheRedis, logger)
	limitService := usagelimit.New(db, logger)
	matcher := matching.New(db, logger)
	missionService := missionservice.New(db, privilegeStore, matcher, logger)
	authService := authservice.New(db, jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL))

	router := chi.NewRouter()

	RegisterRoutes(router, logger, Services{
		Auth:       authService,
		Mission:    missionService,
		Privileges: privilegeStore,
		Limits:     limitService,
		Health:     health.New(logger, db, cacheRedis),
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает сервер и останавливает его после отмены контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
