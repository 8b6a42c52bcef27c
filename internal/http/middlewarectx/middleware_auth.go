// Package middlewarectx содержит HTTP middleware для проверки токенов доступа.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization, разрешает его в пользователя через бизнес-логику и в случае
// успеха добавляет пользователя в контекст запроса.
//
// Обработка построена как явное дерево из двух ветвей — токена нет / токен
// есть — с ровно одним терминальным ответом в каждой ветви, чтобы на один
// запрос никогда не отправлялось два ответа.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-backend/internal/http/response"
	"github.com/magabrotheeeer/auth-backend/internal/lib/sl"
	"github.com/magabrotheeeer/auth-backend/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserKey — ключ, под которым аутентифицированный пользователь лежит в контексте.
const UserKey Key = "user"

// Service описывает интерфейс бизнес-логики для разрешения токена в пользователя.
type Service interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден и его владелец существует, пользователь добавляется
// в контекст запроса, иначе возвращается HTTP 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				log.Info("request without bearer token rejected")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("No token, authorization denied"))
				return
			}

			user, err := authService.Authenticate(r.Context(), tokenStr)
			if err != nil {
				log.Error("token verification failed", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Not authorized, token failed"))
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает пользователя, положенного в контекст JWTMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok && user != nil
}
