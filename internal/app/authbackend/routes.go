// Package authbackend предоставляет маршруты сервиса аутентификации.
package authbackend

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/auth-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/auth-backend/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/auth-backend/internal/http/handlers/auth/profile"
	"github.com/magabrotheeeer/auth-backend/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/auth-backend/internal/http/handlers/health"
	"github.com/magabrotheeeer/auth-backend/internal/http/middlewarectx"
	services "github.com/magabrotheeeer/auth-backend/internal/services/auth"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *services.AuthService, db *sql.DB) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/auth", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Конечные точки, требующие токен доступа
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Post("/logout", logout.New(logger).ServeHTTP)
			r.Post("/profile", profile.New(logger).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
