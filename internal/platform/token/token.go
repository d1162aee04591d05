// Package token issues and verifies the signed claim sets used to
// authenticate requests without a server-side session lookup.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ghanalingo/internal/feature/auth/domain/entity"
)

// ErrInvalidToken is returned by Verify for any token that cannot be
// trusted: bad signature, unexpected algorithm, malformed payload or
// past expiry. Callers get no finer detail than this.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload issued at registration and login.
type Claims struct {
	UserID            uint   `json:"userId"`
	Username          string `json:"username"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide HMAC secret.
type Service struct {
	secret []byte
	expiry time.Duration
}

// NewService creates a token Service. The secret must come from
// configuration; there is no built-in default.
func NewService(secret string, expiry time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue signs a claim set for the given identity, expiring after the
// configured duration.
func (s *Service) Issue(ident entity.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:            ident.UserID,
		Username:          ident.Username,
		FirstName:         ident.FirstName,
		LastName:          ident.LastName,
		PreferredLanguage: ident.PreferredLanguage,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenStr and returns the identity it asserts.
func (s *Service) Verify(tokenStr string) (*entity.Identity, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		// Only HMAC is acceptable; everything else is an attack.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	return &entity.Identity{
		UserID:            claims.UserID,
		Username:          claims.Username,
		FirstName:         claims.FirstName,
		LastName:          claims.LastName,
		PreferredLanguage: claims.PreferredLanguage,
	}, nil
}
