// Package credentials resolves the caller's identity from a request,
// trying each configured credential source in a fixed order.
package credentials

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"ghanalingo/internal/feature/auth/domain/entity"
	"ghanalingo/internal/platform/session"
)

const (
	// TokenCookie carries the signed auth token.
	TokenCookie = "token"

	// SessionCookie carries the server-side session ID.
	SessionCookie = "ghanalingo_sid"
)

// Verifier checks a signed token and returns the identity it asserts.
type Verifier interface {
	Verify(token string) (*entity.Identity, error)
}

// SessionFinder loads the identity stored for a server-side session ID.
type SessionFinder interface {
	Find(ctx context.Context, id string) (*entity.Identity, error)
}

// Resolver extracts an identity from a request. It returns (nil, nil)
// when its credential source is absent, and an error only when the
// source is present but cannot be trusted.
type Resolver interface {
	Resolve(c *gin.Context) (*entity.Identity, error)
}

// Chain tries each resolver in order; the first resolved identity wins.
type Chain []Resolver

// NewChain builds the default resolution order: server session first,
// then the token cookie, then the Authorization header. sessions may be
// nil for stateless deployments.
func NewChain(sessions SessionFinder, tokens Verifier) Chain {
	var ch Chain
	if sessions != nil {
		ch = append(ch, SessionResolver{Sessions: sessions})
	}
	return append(ch,
		CookieTokenResolver{Tokens: tokens},
		BearerTokenResolver{Tokens: tokens},
	)
}

func (ch Chain) Resolve(c *gin.Context) (*entity.Identity, error) {
	for _, r := range ch {
		ident, err := r.Resolve(c)
		if err != nil {
			return nil, err
		}
		if ident != nil {
			return ident, nil
		}
	}
	return nil, nil
}

// SessionResolver resolves identities from the server-side session
// store. An expired or unknown session falls through to the next
// resolver rather than failing the request.
type SessionResolver struct {
	Sessions SessionFinder
}

func (r SessionResolver) Resolve(c *gin.Context) (*entity.Identity, error) {
	sid, err := c.Cookie(SessionCookie)
	if err != nil || sid == "" {
		return nil, nil
	}
	ident, err := r.Sessions.Find(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ident, nil
}

// CookieTokenResolver resolves identities from the token cookie.
type CookieTokenResolver struct {
	Tokens Verifier
}

func (r CookieTokenResolver) Resolve(c *gin.Context) (*entity.Identity, error) {
	tok, err := c.Cookie(TokenCookie)
	if err != nil || tok == "" {
		return nil, nil
	}
	return r.Tokens.Verify(tok)
}

// BearerTokenResolver resolves identities from the Authorization
// header.
type BearerTokenResolver struct {
	Tokens Verifier
}

func (r BearerTokenResolver) Resolve(c *gin.Context) (*entity.Identity, error) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil, nil
	}
	return r.Tokens.Verify(strings.TrimPrefix(auth, "Bearer "))
}
