package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
)

const msgTooManyRequests = "too many requests, slow down"

// RateLimit ограничивает общий поток запросов к сервису.
// Лимитер общий на процесс: защита от всплесков, а не квоты по клиентам.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
