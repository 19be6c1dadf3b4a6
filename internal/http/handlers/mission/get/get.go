// Package get реализует HTTP-обработчик чтения одной миссии.
// Карточка отдаётся с учётом уровня доступа зрителя: посетители и
// неподтверждённые аккаунты получают отредактированную версию.
package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/asanbekov/missionboard/internal/http/middlewarectx"
	"github.com/asanbekov/missionboard/internal/http/response"
	"github.com/asanbekov/missionboard/internal/lib/sl"
	"github.com/asanbekov/missionboard/internal/models"
	missionservice "github.com/asanbekov/missionboard/internal/services/mission"
)

// Service описывает интерфейс бизнес-логики выдачи миссий.
type Service interface {
	GetMission(ctx context.Context, actor *models.Actor, id string) (*models.MissionView, error)
}

// Handler обрабатывает HTTP-запросы чтения миссии.
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
// @Summary Получение миссии
// @Description Возвращает карточку миссии с учётом уровня доступа зрителя
// @Tags Missions
// @Produce  json
// @Param id path string true "Идентификатор миссии"
// @Success 200 {object} response.OKResponse "Карточка миссии"
// @Failure 404 {object} response.ErrorResponse "Миссия не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /missions/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mission.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("mission id missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("mission id is required"))
		return
	}

	actor := middlewarectx.ActorFromContext(r.Context())

	view, err := h.missionService.GetMission(r.Context(), actor, id)
	if err != nil {
		if errors.Is(err, missionservice.ErrMissionNotFound) {
			log.Info("mission not found", slog.String("mission_id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("mission not found"))
			return
		}
		log.Error("failed to get mission", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	render.JSON(w, r, response.OKWithData(view))
}
