package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/GZ-BookingService/internal/api/handlers"
)

const msgAdminOnly = "admin access required"

// AdminChecker проверяет email по списку администраторов
type AdminChecker interface {
	IsAdminEmail(ctx context.Context, email string) (bool, error)
}

// AdminOnly пропускает только пользователей из списка администраторов.
// Вешается поверх Auth: сессия уже должна быть в контексте.
// При недоступности списка (или пустом email в токене) доступ не выдается.
func AdminOnly(checker AdminChecker, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSession(r.Context())
			if !ok || session.Email == "" {
				log.Warn("%s %s - admin check without session email", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			isAdmin, err := checker.IsAdminEmail(r.Context(), session.Email)
			if err != nil {
				log.Error("%s %s - admin check failed for %s: %v", r.Method, r.URL.Path, session.Email, err)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			if !isAdmin {
				log.Warn("%s %s - admin access denied for %s", r.Method, r.URL.Path, session.Email)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			session.IsAdmin = true
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}
