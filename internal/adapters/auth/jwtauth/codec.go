package jwtauth

import (
	"context"
	"strings"
	"time"

	"straysense/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

// Codec firma y verifica credenciales HS256 con un secreto compartido.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func New(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

type tokenClaims struct {
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c *Codec) Sign(claims auth.Claims, ttl time.Duration) (string, error) {
	now := c.now()

	tc := tokenClaims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		SessionID: claims.SessionID,
		Role:      claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(c.secret)
}

func (c *Codec) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, auth.ErrInvalidToken
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(c.now))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	return auth.Claims{
		UserID:    tc.UserID,
		Email:     tc.Email,
		SessionID: tc.SessionID,
		Role:      tc.Role,
	}, nil
}
