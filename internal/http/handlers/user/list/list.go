// Package list реализует HTTP-обработчик списка пользователей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-tracker/internal/http/response"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// Handler возвращает всех пользователей без паролей.
type Handler struct {
	log     *slog.Logger
	service Service
	errors  Responder
}

// Service описывает бизнес-логику выборки пользователей.
type Service interface {
	List(ctx context.Context) ([]models.PublicUser, error)
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
// @Summary Список пользователей
// @Tags Users
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.PublicUser}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.List(r.Context())
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}
	if users == nil {
		users = []models.PublicUser{}
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	render.JSON(w, r, response.OKWithData(users))
}
