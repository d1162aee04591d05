// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"ghanalingo/internal/api"
	"ghanalingo/internal/feature/auth/domain/entity"
	"ghanalingo/internal/feature/auth/transport/credentials"
	"ghanalingo/internal/feature/auth/usecase"
	"ghanalingo/internal/platform/token"
)

// AuthUsecase defines the authentication operations the handlers
// orchestrate. Following Go convention, the interface is defined by the
// consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and issues a signed token.
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	// Login authenticates a user and issues a signed token.
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	// CurrentUser re-reads the user row for a resolved identity.
	CurrentUser(ctx context.Context, ident entity.Identity) (*entity.User, error)
}

// SessionStore is the server-side session channel. It is nil in
// stateless deployments, where the signed token is the only credential.
type SessionStore interface {
	Create(ctx context.Context, ident entity.Identity) (string, error)
	Destroy(ctx context.Context, id string) error
}

// AuthHandler handles the HTTP requests for register, login, logout and
// fetch-current-user.
type AuthHandler struct {
	auth      AuthUsecase
	resolver  credentials.Resolver
	sessions  SessionStore
	cookieTTL time.Duration
}

// NewAuthHandler creates a new instance of AuthHandler. sessions may be
// nil; the token cookie then remains the only credential set.
func NewAuthHandler(auth AuthUsecase, resolver credentials.Resolver, sessions SessionStore, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		resolver:  resolver,
		sessions:  sessions,
		cookieTTL: cookieTTL,
	}
}

// Register handles the user registration endpoint.
// - binds the request JSON, 400 on malformed bodies
// - 400 with a field message for validation failures and duplicate email
// - 500 when hashing, username generation or the insert fails
// - 201 with token, cookies and the public user view on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	in := usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if req.PreferredLanguage != nil {
		in.PreferredLanguage = *req.PreferredLanguage
	}

	res, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		h.writeAuthError(c, "Registration failed", err)
		return
	}

	slog.Info("user registered", "username", res.User.Username, "remote_addr", c.ClientIP())
	h.establishSession(c, res.Identity)
	h.setAuthCookie(c, res.Token)
	c.JSON(http.StatusCreated, api.AuthResponse{
		Message: "Registration successful",
		Token:   res.Token,
		User:    userView(res.User, res.Identity.PreferredLanguage),
	})
}

// Login handles the user login endpoint.
// - 400 for missing fields or a malformed email
// - 401 with an identical payload for unknown email and wrong password
// - 200 with token, cookies and the public user view on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthError(c, "Login failed", err)
		return
	}

	slog.Info("user login successful", "username", res.User.Username, "remote_addr", c.ClientIP())
	h.establishSession(c, res.Identity)
	h.setAuthCookie(c, res.Token)
	c.JSON(http.StatusOK, api.AuthResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    userView(res.User, res.Identity.PreferredLanguage),
	})
}

// User handles the fetch-current-user endpoint. The credential is
// resolved through the configured chain; identity fields come from the
// store, with only the preferred language merged from the credential.
func (h *AuthHandler) User(c *gin.Context) {
	ident, err := h.resolver.Resolve(c)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid token"})
			return
		}
		slog.Error("credential resolution failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}
	if ident == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), *ident)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// The credential outlived the account.
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", ident.UserID)
		details := err.Error()
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch user", Details: &details})
		return
	}

	c.JSON(http.StatusOK, userView(user, ident.PreferredLanguage))
}

// Logout clears the auth cookies and destroys the server-side session
// if one exists. It succeeds regardless of prior auth state; the only
// failure path is a session-store error.
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.sessions != nil {
		if sid, err := c.Cookie(credentials.SessionCookie); err == nil && sid != "" {
			if err := h.sessions.Destroy(c.Request.Context(), sid); err != nil {
				slog.Error("session destroy failed", "error", err)
				details := err.Error()
				c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Logout failed", Details: &details})
				return
			}
		}
		clearCookie(c, credentials.SessionCookie)
	}

	clearCookie(c, credentials.TokenCookie)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
}

// writeAuthError maps a usecase error onto the documented status codes.
func (h *AuthHandler) writeAuthError(c *gin.Context, generic string, err error) {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		slog.Warn("validation failed", "field", vErr.Field, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: vErr.Message})
	case errors.Is(err, usecase.ErrEmailTaken):
		slog.Warn("duplicate registration attempt", "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "User already exists with this email"})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		slog.Warn("login rejected", "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, usecase.ErrUsernameExhausted):
		slog.Error("username generation exhausted", "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Unable to generate unique username after multiple attempts"})
	default:
		slog.Error("auth operation failed", "error", err, "remote_addr", c.ClientIP())
		details := err.Error()
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: generic, Details: &details})
	}
}

// establishSession creates a server-side session for the identity and
// sets the session cookie. A failed session write is logged but not
// fatal: the token cookie still authenticates the client.
func (h *AuthHandler) establishSession(c *gin.Context, ident entity.Identity) {
	if h.sessions == nil {
		return
	}
	sid, err := h.sessions.Create(c.Request.Context(), ident)
	if err != nil {
		slog.Error("session create failed", "error", err, "user_id", ident.UserID)
		return
	}
	h.setCookie(c, credentials.SessionCookie, sid)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, tok string) {
	h.setCookie(c, credentials.TokenCookie, tok)
}

func (h *AuthHandler) setCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(h.cookieTTL.Seconds()), "/", "", false, true)
}

func clearCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", false, true)
}

// userView builds the public representation of a user. The password
// hash never leaves the entity; the preferred language is included only
// when the resolved credential carried one.
func userView(u *entity.User, preferredLanguage string) api.User {
	view := api.User{
		Id:        int(u.ID),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     openapi_types.Email(u.Email),
	}
	if preferredLanguage != "" {
		view.PreferredLanguage = &preferredLanguage
	}
	if !u.CreatedAt.IsZero() {
		createdAt := u.CreatedAt
		view.CreatedAt = &createdAt
	}
	return view
}
