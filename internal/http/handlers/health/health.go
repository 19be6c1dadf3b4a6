// Package health реализует HTTP-обработчик проверки готовности сервиса.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/asanbekov/missionboard/internal/cache"
	"github.com/asanbekov/missionboard/internal/http/response"
	"github.com/asanbekov/missionboard/internal/lib/sl"
	"github.com/asanbekov/missionboard/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы health-check.
type Handler struct {
	log     *slog.Logger
	storage *repository.Storage
	cache   *cache.Cache
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, storage *repository.Storage, cache *cache.Cache) *Handler {
	return &Handler{
		log:     log,
		storage: storage,
		cache:   cache,
	}
}

// ServeHTTP godoc
// @Summary Проверка готовности сервиса
// @Description Проверяет доступность базы данных и кеша
// @Tags Health
// @Produce  json
// @Success 200 {object} response.OKResponse "Сервис доступен"
// @Failure 503 {object} response.ErrorResponse "Зависимости недоступны"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	log := h.log.With(slog.String("op", op))

	dbStatus := "ok"
	if err := repository.CheckDatabaseReady(h.storage); err != nil {
		log.Error("database is not ready", sl.Err(err))
		dbStatus = "unavailable"
	}

	cacheStatus := "ok"
	if err := h.cache.Set("health:probe", "ok", time.Minute); err != nil {
		log.Error("cache is not ready", sl.Err(err))
		cacheStatus = "unavailable"
	}

	if dbStatus != "ok" || cacheStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	render.JSON(w, r, response.OKWithData(map[string]any{
		"database": dbStatus,
		"cache":    cacheStatus,
	}))
}
