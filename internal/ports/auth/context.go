package auth

import "context"

type ctxKey struct{}

// WithClaims guarda las claims resueltas en el contexto del request.
func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext recupera las claims; ok=false si el request no está autenticado.
func FromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(Claims)
	return c, ok
}
