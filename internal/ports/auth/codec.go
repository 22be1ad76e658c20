package auth

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidToken cubre credenciales malformadas, con firma inválida o vencidas.
var ErrInvalidToken = errors.New("invalid token")

// TokenSigner emite una credencial firmada con las claims y el TTL indicados.
type TokenSigner interface {
	Sign(claims Claims, ttl time.Duration) (string, error)
}

// TokenVerifier valida una credencial y devuelve sus claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
