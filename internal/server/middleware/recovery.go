package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware перехватывает панику обработчика, логирует стек
// и отвечает 500 без деталей для клиента
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return recoverWith(logger, func(w http.ResponseWriter) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	})
}

// RecoveryWithCustomError отвечает на панику JSON-ошибкой с заданным
// сообщением вместо plain-text 500
func RecoveryWithCustomError(logger *slog.Logger, errorMessage string) func(http.Handler) http.Handler {
	return recoverWith(logger, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprintf(w, `{"error":"%s"}`, errorMessage)
	})
}

func recoverWith(logger *slog.Logger, respond func(http.ResponseWriter)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"remote_addr", r.RemoteAddr,
						"stack", string(debug.Stack()),
					)
					respond(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
