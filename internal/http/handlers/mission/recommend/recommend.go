// Package recommend реализует HTTP-обработчик рекомендаций миссий
// для исполнителя.
package recommend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/asanbekov/missionboard/internal/http/middlewarectx"
	"github.com/asanbekov/missionboard/internal/http/response"
	"github.com/asanbekov/missionboard/internal/lib/sl"
	"github.com/asanbekov/missionboard/internal/models"
	missionservice "github.com/asanbekov/missionboard/internal/services/mission"
)

// Service описывает интерфейс бизнес-логики рекомендаций.
type Service interface {
	Recommendations(ctx context.Context, actor *models.Actor, excluded []string) ([]missionservice.Recommendation, error)
}

// Handler обрабатывает HTTP-запросы рекомендаций.
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
// @Summary Рекомендованные миссии
// @Description Возвращает подборку миссий под профиль исполнителя, отсортированную по релевантности
// @Tags Missions
// @Produce  json
// @Param exclude query string false "Идентификаторы миссий через запятую, исключаемые из подборки"
// @Success 200 {object} response.OKResponse "Рекомендации"
// @Failure 401 {object} response.ErrorResponse "Требуется авторизация"
// @Failure 404 {object} response.ErrorResponse "Профиль исполнителя не заполнен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /missions/recommendations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mission.recommend"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor := middlewarectx.ActorFromContext(r.Context())

	var excluded []string
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				excluded = append(excluded, id)
			}
		}
	}

	recs, err := h.missionService.Recommendations(r.Context(), actor, excluded)
	if err != nil {
		if errors.Is(err, missionservice.ErrWorkerProfileNotFound) {
			log.Info("worker profile not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("worker profile not found"))
			return
		}
		log.Error("failed to build recommendations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":           len(recs),
		"recommendations": recs,
	}))
}
