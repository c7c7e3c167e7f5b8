// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Пароль хэшируется сервисом и никогда не попадает в ответ.
package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-tracker/internal/http/response"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
	"github.com/magabrotheeeer/subscription-tracker/internal/models"
)

// ErrInvalidBody возвращается, если тело запроса не является корректным JSON.
var ErrInvalidBody = apperror.New(http.StatusBadRequest, "Invalid request body")

// Handler обрабатывает запросы на регистрацию.
type Handler struct {
	log     *slog.Logger
	service Service
	errors  Responder
}

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.PublicUser, error)
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
// @Summary Зарегистрировать пользователя
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body models.RegisterUserRequest true "Данные пользователя"
// @Success 201 {object} response.Response{data=models.PublicUser} "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации, занятый email или некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		h.errors.Respond(w, r, ErrInvalidBody)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	log.Info("user registered", slog.String("id", user.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(user))
}
