// Package list реализует HTTP-обработчик списка подписок пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-tracker/internal/http/response"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// Handler возвращает все подписки пользователя из URL.
type Handler struct {
	log     *slog.Logger
	service Service
	errors  Responder
}

// Service описывает бизнес-логику выборки подписок.
type Service interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Subscription, error)
}

// Responder пишет ответ об ошибке.
type Responder interface {
	Respond(w http.ResponseWriter, r *http.Request, err error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, errors Responder) *Handler {
	return &Handler{
		log:     log,
		service: service,
		errors:  errors,
	}
}

// ServeHTTP godoc
// @Summary Подписки пользователя
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "ID пользователя"
// @Success 200 {object} response.Response{data=[]models.Subscription}
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/{id}/subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "id")

	subs, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	if subs == nil {
		subs = []*models.Subscription{}
	}

	log.Debug("subscriptions listed", slog.String("user", userID), slog.Int("count", len(subs)))
	render.JSON(w, r, response.OKWithData(subs))
}
