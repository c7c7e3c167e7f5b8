// Package create реализует HTTP-обработчик создания подписки.
//
// Handler декодирует JSON-тело запроса, передаёт его сервису, который
// проверяет данные, вычисляет дату продления и сохраняет запись, и возвращает
// созданную подписку со статусом 201.
//
// Все ошибки передаются в Responder, который формирует единый ответ.
package create

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

// Handler управляет HTTP-запросами на создание подписок.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики подписок
	errors  Responder    // Формирует ответ об ошибке
}

// Service описывает бизнес-логику создания подписки.
type Service interface {
	Create(ctx context.Context, req models.CreateSubscriptionRequest) (*models.Subscription, error)
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
// @Summary Создать подписку
// @Description Создает подписку пользователя. Если дата продления не указана, она вычисляется из даты начала и периодичности.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body models.CreateSubscriptionRequest true "Данные новой подписки"
// @Success 201 {object} response.Response{data=models.Subscription} "Подписка создана"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		h.errors.Respond(w, r, ErrInvalidBody)
		return
	}

	sub, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.errors.Respond(w, r, err)
		return
	}

	log.Info("subscription created", slog.String("id", sub.ID), slog.String("user", sub.UserID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(sub))
}
