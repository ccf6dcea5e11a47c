package middleware

import (
	"context"

	"github.com/google/uuid"
)

// Session данные аутентифицированного запроса, извлеченные из JWT.
// Передается явно через контекст запроса - глобального состояния нет.
type Session struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool
}

type ctxKey string

const sessionKey ctxKey = "session"

// WithSession кладет сессию в контекст запроса
func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession извлекает сессию из контекста запроса
func GetSession(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey).(Session)
	return session, ok
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	session, ok := GetSession(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return session.UserID, true
}
