package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Logging пишет строку access-лога на каждый запрос
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("%s %s status=%d duration=%s request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start), RequestIDFromContext(r.Context()))
		})
	}
}

// Recovery перехватывает панику в обработчике и отвечает 500
func Recovery(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered: %v, request_id=%s\n%s",
						err, RequestIDFromContext(r.Context()), debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
