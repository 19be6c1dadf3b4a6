// Package missionboard предоставляет маршруты для основного приложения.
package missionboard

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/asanbekov/missionboard/internal/http/handlers/auth/login"
	"github.com/asanbekov/missionboard/internal/http/handlers/auth/register"
	"github.com/asanbekov/missionboard/internal/http/handlers/health"
	missionget "github.com/asanbekov/missionboard/internal/http/handlers/mission/get"
	missionlist "github.com/asanbekov/missionboard/internal/http/handlers/mission/list"
	"github.com/asanbekov/missionboard/internal/http/handlers/mission/recommend"
	privilegelist "github.com/asanbekov/missionboard/internal/http/handlers/privilege/list"
	privilegeupdate "github.com/asanbekov/missionboard/internal/http/handlers/privilege/update"
	usagecheck "github.com/asanbekov/missionboard/internal/http/handlers/usage/check"
	"github.com/asanbekov/missionboard/internal/http/middlewarectx"
	authservice "github.com/asanbekov/missionboard/internal/services/auth"
	missionservice "github.com/asanbekov/missionboard/internal/services/mission"
	"github.com/asanbekov/missionboard/internal/services/privilege"
	"github.com/asanbekov/missionboard/internal/services/usagelimit"

	"log/slog"
)

// Services собирает бизнес-логику, необходимую HTTP-слою.
type Services struct {
	Auth       *authservice.Service
	Mission    *missionservice.Service
	Privileges *privilege.Store
	Limits     *usagelimit.Service
	Health     *health.Handler
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svcs Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, svcs.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, svcs.Auth).ServeHTTP)

		// Публичные миссии: токен не обязателен, но при его наличии
		// карточки раскрываются по уровню доступа зрителя
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.OptionalJWTMiddleware(svcs.Auth, logger))
			r.Get("/missions", missionlist.New(logger, svcs.Mission).ServeHTTP)
			r.Get("/missions/{id}", missionget.New(logger, svcs.Mission).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svcs.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/missions/recommendations", recommend.New(logger, svcs.Mission).ServeHTTP)
			r.Get("/limits/{type}", usagecheck.New(logger, svcs.Limits).ServeHTTP)

			// Администрирование привилегий
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Get("/admin/privileges", privilegelist.New(logger, svcs.Privileges).ServeHTTP)
				r.Put("/admin/privileges", privilegeupdate.New(logger, svcs.Privileges).ServeHTTP)
			})
		})
	})

	r.Get("/health", svcs.Health.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
