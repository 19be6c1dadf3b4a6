// Package list реализует HTTP-обработчик списка открытых миссий.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/asanbekov/missionboard/internal/http/middlewarectx"
	"github.com/asanbekov/missionboard/internal/http/response"
	"github.com/asanbekov/missionboard/internal/lib/sl"
	"github.com/asanbekov/missionboard/internal/models"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service описывает интерфейс бизнес-логики выдачи миссий.
type Service interface {
	ListMissions(ctx context.Context, actor *models.Actor, limit, offset int) ([]models.MissionView, error)
}

// Handler обрабатывает HTTP-запросы списка миссий.
type Handler struct {
	log            *slog.Logger
	missionService Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, missionService Service) *Handler {
	return &Handler{
		log:            log,
		missionService: missionService,
	}
}

// ServeHTTP godoc
// @Summary Список открытых миссий
// @Description Возвращает страницу открытых миссий с учётом уровня доступа зрителя
// @Tags Missions
// @Produce  json
// @Param limit query int false "Размер страницы (по умолчанию 20)"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.OKResponse "Список миссий"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /missions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mission.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit := queryInt(r, "limit", defaultLimit)
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	actor := middlewarectx.ActorFromContext(r.Context())

	views, err := h.missionService.ListMissions(r.Context(), actor, limit, offset)
	if err != nil {
		log.Error("failed to list missions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":    len(views),
		"missions": views,
	}))
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
