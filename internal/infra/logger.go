package infra

import (
	"context"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-sync/internal/config"
)

// LoggerHTTP injects the service logger into every request context so
// handlers can pick it up with logger_lib.FromContext.
func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
