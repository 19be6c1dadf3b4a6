// Package list реализует HTTP-обработчик чтения действующих привилегий.
// Доступен только администраторам.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/asanbekov/missionboard/internal/http/response"
	"github.com/asanbekov/missionboard/internal/lib/settingvalue"
	"github.com/asanbekov/missionboard/internal/models"
)

// Service описывает интерфейс хранилища привилегий.
type Service interface {
	GetPrivileges(ctx context.Context, category *models.SettingCategory) map[string]settingvalue.Value
}

// Handler обрабатывает HTTP-запросы чтения привилегий.
type Handler struct {
	log            *slog.Logger
	privilegeStore Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, privilegeStore Service) *Handler {
	return &Handler{
		log:            log,
		privilegeStore: privilegeStore,
	}
}

// ServeHTTP godoc
// @Summary Действующие привилегии
// @Description Возвращает карту действующих привилегий, при необходимости суженную до категории
// @Tags Admin
// @Produce  json
// @Param category query string false "Категория: GLOBAL, WORKER, ESTABLISHMENT, ADMIN"
// @Success 200 {object} response.OKResponse "Карта привилегий"
// @Failure 400 {object} response.ErrorResponse "Неизвестная категория"
// @Failure 403 {object} response.ErrorResponse "Требуются права администратора"
// @Security BearerAuth
// @Router /admin/privileges [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.privilege.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var category *models.SettingCategory
	if raw := r.URL.Query().Get("category"); raw != "" {
		c := models.SettingCategory(raw)
		if !knownCategory(c) {
			log.Error("unknown category", slog.String("category", raw))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown category"))
			return
		}
		category = &c
	}

	privileges := h.privilegeStore.GetPrivileges(r.Context(), category)

	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":      len(privileges),
		"privileges": privileges,
	}))
}

func knownCategory(c models.SettingCategory) bool {
	for _, known := range models.SettingCategories {
		if c == known {
			return true
		}
	}
	return false
}
