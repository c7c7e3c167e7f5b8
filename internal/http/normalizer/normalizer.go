// Package normalizer переводит ошибки обработчиков в единый JSON-ответ
// {"success": false, "error": "..."} с HTTP-статусом из apperror.Classify.
//
// Каждая ошибка логируется до преобразования. Сообщения внутренних ошибок
// остаются в логе и клиенту не возвращаются.
package normalizer

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/magabrotheeeer/subscription-tracker/internal/http/response"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/apperror"
	"github.com/magabrotheeeer/subscription-tracker/internal/lib/sl"
)

// Normalizer формирует ответы об ошибках.
type Normalizer struct {
	log    *slog.Logger
	errors *prometheus.CounterVec
}

// New создаёт Normalizer и регистрирует счётчик ошибок в reg.
func New(log *slog.Logger, reg prometheus.Registerer) *Normalizer {
	return &Normalizer{
		log: log,
		errors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "subscription_tracker_http_errors_total",
			Help: "Number of error responses by error kind.",
		}, []string{"kind"}),
	}
}

// Respond логирует err и пишет ответ с соответствующим статусом.
// Если формирование ответа паникует, клиент получает 500 в виде простого текста.
func (n *Normalizer) Respond(w http.ResponseWriter, r *http.Request, err error) {
	log := n.log.With(
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("path", r.URL.Path),
	)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("failed to normalize error", slog.Any("panic", rec), sl.Err(err))
			http.Error(w, apperror.MsgServerError, http.StatusInternalServerError)
		}
	}()

	log.Error("request failed", sl.Err(err))

	res := apperror.Classify(err)
	n.errors.WithLabelValues(res.Kind.String()).Inc()

	render.Status(r, res.Status)
	render.JSON(w, r, response.Error(res.Message))
}

// Recoverer перехватывает панику обработчика и отвечает через Respond,
// поэтому клиент получает 500 в едином формате.
func (n *Normalizer) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			n.log.Error("handler panicked",
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("stack", string(debug.Stack())),
			)
			n.Respond(w, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
