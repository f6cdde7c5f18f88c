package auth

import (
	"context"
	"errors"

	"cortex-backend/application/ports"
	"cortex-backend/domain/accounts"
)

// Session carries the authenticated caller through a request: the
// resolved account, the raw bearer token from the cookie, and the
// tenant-scoped store built from that token.
type Session struct {
	Account accounts.Account
	Token   string
	Store   ports.TenantStore
}

type contextKey string

const sessionContextKey contextKey = "session"

// GetSessionFromContext extracts the session from context
func GetSessionFromContext(ctx context.Context) (*Session, error) {
	session, ok := ctx.Value(sessionContextKey).(*Session)
	if !ok || session == nil {
		return nil, errors.New("session not found in context")
	}
	return session, nil
}

// SetSessionInContext adds the session to context
func SetSessionInContext(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}
