package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"cortex-backend/application/services"
	"cortex-backend/domain/accounts"
	"cortex-backend/interfaces/http/rest/middleware"
	"cortex-backend/pkg/common"
	pkgerrors "cortex-backend/pkg/errors"
	"cortex-backend/pkg/utils"
)

const maxAuthBodyBytes = 1 << 20

// CookiePolicy is the one cookie policy applied on every issuance path.
type CookiePolicy struct {
	Domain string
	TTL    time.Duration
}

// AuthHandler handles registration, login, logout and session checks.
type AuthHandler struct {
	auth   *services.AuthService
	cookie CookiePolicy
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, cookie CookiePolicy, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		cookie: cookie,
		errors: pkgerrors.NewErrorHandler(logger),
		logger: logger,
	}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string           `json:"username" validate:"required,min=1,max=64"`
	Password string           `json:"password" validate:"required,min=1"`
	Extra    accounts.Profile `json:"extra"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := common.ParseJSONBody(r, &req, maxAuthBodyBytes); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.auth.Register(r.Context(), req.Username, req.Password, req.Extra)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.setAuthCookie(w, result.Token)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "User registered successfully",
		"status":  result.Provision,
	})
}

// Login handles POST /auth/login with form-encoded credentials.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("Invalid form body"))
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("username and password are required"))
		return
	}

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.setAuthCookie(w, token)
	h.respondJSON(w, http.StatusOK, map[string]any{"message": "Logged in successfully"})
}

// Logout handles POST /auth/logout by clearing the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	h.respondJSON(w, http.StatusOK, map[string]any{"message": "Successfully logged out"})
}

// CheckToken handles GET /auth/token. The session middleware has already
// validated the cookie by the time this runs.
func (h *AuthHandler) CheckToken(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{"message": "OK"})
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
