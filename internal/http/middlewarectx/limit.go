// Package middlewarectx содержит HTTP middleware сервиса: ограничение частоты
// запросов и сбор метрик по ответам.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/subscription-tracker/internal/config"
	"github.com/magabrotheeeer/subscription-tracker/internal/http/response"
)

// MsgTooManyRequests возвращается клиенту при превышении лимита.
const MsgTooManyRequests = "Too many requests"

// RateLimitMiddleware ограничивает общую частоту запросов к API.
// Лимитер один на весь сервис: cfg.RPS запросов в секунду с запасом cfg.Burst.
func RateLimitMiddleware(log *slog.Logger, cfg config.RateLimit) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error(MsgTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
