package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"petshop/internal/pkg/cache"
	"petshop/internal/pkg/logger"
)

// RateLimiter limita requisições por IP numa janela fixa guardada no Redis.
// A janela nasce no primeiro INCR da chave (resultado 1), que define o EXPIRE.
// Se o cache falhar a requisição segue.
func RateLimiter(client cache.Client, limit int, period time.Duration, timeout time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + clientIP(r)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limit indisponível, requisição liberada.", map[string]interface{}{"key": key, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, period); err != nil {
					log.Warn("Falha ao iniciar janela do rate limit.", map[string]interface{}{"key": key, "error": err.Error()})
				}
			}

			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(period.Seconds())))
				writeError(w, &tooManyRequestsError{limit: limit})
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// tooManyRequestsError cumpre apperror.AppError para reaproveitar o corpo padronizado.
type tooManyRequestsError struct {
	limit int
}

func (e *tooManyRequestsError) Error() string {
	return fmt.Sprintf("Limite de %d requisições excedido. Tente novamente em instantes.", e.limit)
}
func (e *tooManyRequestsError) Category() string { return "RATE_LIMITED" }
func (e *tooManyRequestsError) HTTPStatus() int  { return http.StatusTooManyRequests }
func (e *tooManyRequestsError) Unwrap() error    { return nil }
