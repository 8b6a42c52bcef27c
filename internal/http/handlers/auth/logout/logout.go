// Package logout реализует HTTP-обработчик выхода из системы.
//
// Серверного состояния для инвалидирования токена нет: токен живет до
// истечения срока, а клиент обязан его отбросить. Обработчик существует,
// чтобы контракт API был симметричен входу.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-backend/internal/http/response"
)

// Handler обрабатывает HTTP-запросы на выход.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Подтверждает выход. Токен остаётся валидным до истечения срока, отбросить его должен клиент.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Выход подтверждён"
// @Failure 401 {object} response.ErrorResponse "Нет или неверный токен"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	log.Info("user logged out")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Logout successful.",
	}))
}
