// Package cancel реализует HTTP-обработчик отмены подписки.
//
// Отмена активной подписки переводит её в статус cancelled. Повторная отмена
// ничего не меняет, истёкшую подписку отменить нельзя.
package cancel

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

// Handler обрабатывает запросы на отмену подписки.
type Handler struct {
	log     *slog.Logger
	service Service
	errors  Responder
}

// Service описывает бизнес-логику отмены подписки.
type Service interface {
	Cancel(ctx context.Context, id string) (*models.Subscription, error)
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
// @Summary Отменить подписку
// @Tags Subscriptions
// @Produce  json
// @Param id path string true "ID подписки"
// @Success 200 {object} response.Response{data=models.Subscription}
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 409 {object} response.ErrorResponse "Подписка уже истекла"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/{id}/cancel [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.cancel"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	sub, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	log.Info("subscription cancelled", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(sub))
}
