// Package subscriptiontracker собирает HTTP-приложение: зависимости, маршруты
// и корректную остановку сервера.
package subscriptiontracker

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/subscription-tracker/internal/config"
	"github.com/magabrotheeeer/subscription-tracker/internal/http/handlers/health"
	subcancel "github.com/magabrotheeeer/subscription-tracker/internal/http/handlers/subscription/cancel"
	subcreate "github.com/magabrotheeeer/subscription-tracker/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/subscription-tracker/internal/http/handlers/subscription/list"
	subread "github.com/magabrotheeeer/subscription-tracker/internal/http/handlers/subscription/read"
	userlist "github.com/magabrotheeeer/subscription-tracker/internal/http/handlers/user/list"
	userread "github.com/magabrotheeeer/subscription-tracker/internal/http/handlers/user/read"
	userregister "github.com/magabrotheeeer/subscription-tracker/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/subscription-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/subscription-tracker/internal/http/normalizer"
	subservice "github.com/magabrotheeeer/subscription-tracker/internal/services/subscription"
	userservice "github.com/magabrotheeeer/subscription-tracker/internal/services/user"
)

// Services объединяет зависимости обработчиков.
type Services struct {
	Users         *userservice.UserService
	Subscriptions *subservice.SubscriptionService
	DB            health.Pinger
}

// RegisterRoutes регистрирует все маршруты приложения.
// Метрики регистрируются в reg и отдаются через gatherer на /metrics.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg config.RateLimit, svc Services,
	reg prometheus.Registerer, gatherer prometheus.Gatherer) {
	errs := normalizer.New(logger, reg)
	metrics := middlewarectx.NewMetrics(reg)

	notFound := func(w http.ResponseWriter, req *http.Request) {
		errs.Respond(w, req, errNoRoute)
	}
	methodNotAllowed := func(w http.ResponseWriter, req *http.Request) {
		errs.Respond(w, req, errMethodNotAllowed)
	}

	// chi оборачивает NotFound и MethodNotAllowed в middleware, уже объявленные на муксе,
	// а сам мукс прогоняет через них каждый запрос. Поэтому обработчики задаются до Use.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		metrics.Middleware,
		errs.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.NotFound(notFound)
		r.MethodNotAllowed(methodNotAllowed)
		r.Use(middlewarectx.RateLimitMiddleware(logger, cfg))

		r.Get("/health", health.New(logger, svc.DB).ServeHTTP)

		r.Get("/users", userlist.New(logger, svc.Users, errs).ServeHTTP)
		r.Post("/users", userregister.New(logger, svc.Users, errs).ServeHTTP)
		r.Get("/users/{id}", userread.New(logger, svc.Users, errs).ServeHTTP)
		r.Get("/users/{id}/subscriptions", sublist.New(logger, svc.Subscriptions, errs).ServeHTTP)

		r.Post("/subscriptions", subcreate.New(logger, svc.Subscriptions, errs).ServeHTTP)
		r.Get("/subscriptions/{id}", subread.New(logger, svc.Subscriptions, errs).ServeHTTP)
		r.Put("/subscriptions/{id}/cancel", subcancel.New(logger, svc.Subscriptions, errs).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
