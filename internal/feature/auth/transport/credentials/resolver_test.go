package credentials

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghanalingo/internal/feature/auth/domain/entity"
	"ghanalingo/internal/platform/session"
	"ghanalingo/internal/platform/token"
)

// fakeVerifier accepts a fixed set of tokens and rejects anything else.
type fakeVerifier struct {
	identities map[string]*entity.Identity
}

func (f fakeVerifier) Verify(tok string) (*entity.Identity, error) {
	if ident, ok := f.identities[tok]; ok {
		return ident, nil
	}
	return nil, token.ErrInvalidToken
}

// fakeSessions serves identities from a map, or a fixed error.
type fakeSessions struct {
	sessions map[string]*entity.Identity
	err      error
}

func (f fakeSessions) Find(ctx context.Context, id string) (*entity.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	if ident, ok := f.sessions[id]; ok {
		return ident, nil
	}
	return nil, session.ErrNotFound
}

func testContext(t *testing.T, mutate func(req *http.Request)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/api/user", nil)
	require.NoError(t, err)
	if mutate != nil {
		mutate(req)
	}
	c.Request = req
	return c
}

func TestChain_Resolve(t *testing.T) {
	sessionIdent := &entity.Identity{UserID: 1, Username: "fromsession"}
	cookieIdent := &entity.Identity{UserID: 2, Username: "fromcookie"}
	bearerIdent := &entity.Identity{UserID: 3, Username: "frombearer"}

	sessions := fakeSessions{sessions: map[string]*entity.Identity{"sid-1": sessionIdent}}
	tokens := fakeVerifier{identities: map[string]*entity.Identity{
		"cookie-token": cookieIdent,
		"bearer-token": bearerIdent,
	}}
	chain := NewChain(sessions, tokens)

	t.Run("no credentials resolves to nothing", func(t *testing.T) {
		c := testContext(t, nil)

		ident, err := chain.Resolve(c)

		assert.NoError(t, err)
		assert.Nil(t, ident)
	})

	t.Run("session cookie resolves", func(t *testing.T) {
		c := testContext(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-1"})
		})

		ident, err := chain.Resolve(c)

		require.NoError(t, err)
		assert.Equal(t, "fromsession", ident.Username)
	})

	t.Run("session outranks token cookie and header", func(t *testing.T) {
		c := testContext(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-1"})
			req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "cookie-token"})
			req.Header.Set("Authorization", "Bearer bearer-token")
		})

		ident, err := chain.Resolve(c)

		require.NoError(t, err)
		assert.Equal(t, "fromsession", ident.Username)
	})

	t.Run("expired session falls through to the token cookie", func(t *testing.T) {
		c := testContext(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "gone"})
			req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "cookie-token"})
		})

		ident, err := chain.Resolve(c)

		require.NoError(t, err)
		assert.Equal(t, "fromcookie", ident.Username)
	})

	t.Run("token cookie outranks the bearer header", func(t *testing.T) {
		c := testContext(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "cookie-token"})
			req.Header.Set("Authorization", "Bearer bearer-token")
		})

		ident, err := chain.Resolve(c)

		require.NoError(t, err)
		assert.Equal(t, "fromcookie", ident.Username)
	})

	t.Run("bearer header resolves on its own", func(t *testing.T) {
		c := testContext(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer bearer-token")
		})

		ident, err := chain.Resolve(c)

		require.NoError(t, err)
		assert.Equal(t, "frombearer", ident.Username)
	})

	t.Run("non-bearer authorization header is ignored", func(t *testing.T) {
		c := testContext(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})

		ident, err := chain.Resolve(c)

		assert.NoError(t, err)
		assert.Nil(t, ident)
	})

	t.Run("invalid token cookie fails the request", func(t *testing.T) {
		c := testContext(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "forged"})
			// The valid bearer token must not rescue a forged cookie.
			req.Header.Set("Authorization", "Bearer bearer-token")
		})

		ident, err := chain.Resolve(c)

		assert.Nil(t, ident)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("invalid bearer token fails the request", func(t *testing.T) {
		c := testContext(t, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer forged")
		})

		ident, err := chain.Resolve(c)

		assert.Nil(t, ident)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}

func TestChain_SessionStoreOutage(t *testing.T) {
	outage := errors.New("connection refused")
	chain := NewChain(fakeSessions{err: outage}, fakeVerifier{})

	c := testContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-1"})
	})

	ident, err := chain.Resolve(c)

	assert.Nil(t, ident)
	assert.ErrorIs(t, err, outage)
}

func TestNewChain_StatelessSkipsSessions(t *testing.T) {
	chain := NewChain(nil, fakeVerifier{identities: map[string]*entity.Identity{
		"bearer-token": {UserID: 3},
	}})

	assert.Len(t, chain, 2)

	c := testContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer bearer-token")
	})
	ident, err := chain.Resolve(c)

	require.NoError(t, err)
	assert.Equal(t, uint(3), ident.UserID)
}
