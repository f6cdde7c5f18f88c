package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"cortex-backend/application/ports"
	"cortex-backend/pkg/auth"
	pkgerrors "cortex-backend/pkg/errors"
)

// CookieName is the session cookie carrying the bearer token.
const CookieName = "authToken"

// SessionAuth authenticates a request from the authToken cookie: decode
// the token, resolve the account, and bind a tenant-scoped store built
// from the raw token. Every failure is the same generic 401; which check
// failed is logged, never returned.
func SessionAuth(
	tokens *auth.TokenService,
	creds ports.CredentialStore,
	connector ports.TenantConnector,
	logger *zap.Logger,
) func(next http.Handler) http.Handler {
	ipLimiter := auth.NewIPRateLimiter(100) // 100 requests per minute per IP
	errHandler := pkgerrors.NewErrorHandler(logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			allowed, _ := ipLimiter.Allow(r.Context(), clientIP)
			if !allowed {
				errHandler.HandleStatus(w, r, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}

			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				errHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
				return
			}
			rawToken := cookie.Value

			claims, err := tokens.Decode(rawToken)
			if err != nil {
				logger.Warn("Token rejected",
					zap.Error(err),
					zap.String("ip", clientIP),
					zap.String("path", r.URL.Path),
				)
				errHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
				return
			}

			account, err := creds.Account(r.Context(), claims.PreferredUsername)
			if err != nil || account == nil {
				logger.Warn("Unknown token subject",
					zap.String("username", claims.PreferredUsername),
					zap.Error(err),
				)
				errHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
				return
			}

			// The raw token is handed to the database layer so the server
			// applies its own authorization; claims are not re-derived.
			store, err := connector.Connect(r.Context(), account.DatabaseName(), rawToken)
			if err != nil {
				logger.Error("Failed to bind tenant database",
					zap.String("username", account.Username),
					zap.Error(err),
				)
				errHandler.Handle(w, r, pkgerrors.NewUpstreamError("").WithCause(err))
				return
			}

			session := &auth.Session{
				Account: *account,
				Token:   rawToken,
				Store:   store,
			}
			ctx := auth.SetSessionInContext(r.Context(), session)

			logger.Debug("Request authenticated",
				zap.String("username", account.Username),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getClientIP extracts the client IP address
func getClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
