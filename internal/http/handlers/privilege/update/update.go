// Package update реализует HTTP-обработчик изменения привилегий
// администратором. После записи кеш привилегий полностью сбрасывается,
// изменения видны не позже TTL кеша.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/asanbekov/missionboard/internal/http/middlewarectx"
	"github.com/asanbekov/missionboard/internal/http/response"
	"github.com/asanbekov/missionboard/internal/lib/sl"
	"github.com/asanbekov/missionboard/internal/models"
)

// Request — структура входных данных для изменения привилегий.
// Значения передаются строками и типизируются при чтении.
type Request struct {
	Category string            `json:"category" validate:"required,oneof=GLOBAL WORKER ESTABLISHMENT ADMIN"`
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

// Service описывает интерфейс хранилища привилегий.
type Service interface {
	SetPrivileges(ctx context.Context, updates map[string]string, category models.SettingCategory, updatedBy *string) error
}

// Handler обрабатывает HTTP-запросы изменения привилегий.
type Handler struct {
	log            *slog.Logger
	privilegeStore Service
	validate       *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, privilegeStore Service) *Handler {
	return &Handler{
		log:            log,
		privilegeStore: privilegeStore,
		validate:       validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменение привилегий
// @Description Вставляет или обновляет значения привилегий одной категории
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body Request true "Категория и изменяемые значения"
// @Success 200 {object} response.OKResponse "Изменения применены"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /admin/privileges [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.privilege.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	var updatedBy *string
	if actor := middlewarectx.ActorFromContext(r.Context()); actor != nil && actor.UserUID != "" {
		updatedBy = &actor.UserUID
	}

	err := h.privilegeStore.SetPrivileges(r.Context(), req.Settings, models.SettingCategory(req.Category), updatedBy)
	if err != nil {
		log.Error("failed to update privileges", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update privileges"))
		return
	}

	log.Info("privileges updated",
		slog.String("category", req.Category),
		slog.Int("count", len(req.Settings)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "privileges updated",
		"count":   len(req.Settings),
	}))
}
