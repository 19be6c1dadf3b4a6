// Package check реализует HTTP-обработчик проверки дневной квоты
// авторизованного пользователя.
package check

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
	"github.com/asanbekov/missionboard/internal/services/usagelimit"
)

// Service описывает интерфейс бизнес-логики дневных квот.
type Service interface {
	CheckDailyLimit(ctx context.Context, userUID string, lt models.LimitType) (*usagelimit.Result, error)
}

// Handler обрабатывает HTTP-запросы проверки квоты.
type Handler struct {
	log          *slog.Logger
	limitService Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, limitService Service) *Handler {
	return &Handler{
		log:          log,
		limitService: limitService,
	}
}

// ServeHTTP godoc
// @Summary Проверка дневной квоты
// @Description Возвращает остаток дневной квоты по типу действия без её расхода
// @Tags Limits
// @Produce  json
// @Param type path string true "Тип квоты: applications, missions_published, missions_viewed"
// @Success 200 {object} response.OKResponse "Состояние квоты"
// @Failure 400 {object} response.ErrorResponse "Неизвестный тип квоты"
// @Failure 401 {object} response.ErrorResponse "Требуется авторизация"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /limits/{type} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.usage.check"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor := middlewarectx.ActorFromContext(r.Context())
	if actor == nil || actor.UserUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	limitType := models.LimitType(chi.URLParam(r, "type"))

	result, err := h.limitService.CheckDailyLimit(r.Context(), actor.UserUID, limitType)
	if err != nil {
		if errors.Is(err, usagelimit.ErrUnknownLimitType) {
			log.Error("unknown limit type", slog.String("type", string(limitType)))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown limit type"))
			return
		}
		log.Error("failed to check limit", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	render.JSON(w, r, response.OKWithData(result))
}
