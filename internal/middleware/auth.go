package middleware

import (
	"context"
	"net/http"
	"strings"

	"straysense/internal/platform/httpx"
	"straysense/internal/ports/auth"
)

// CredentialValidator resuelve una credencial de usuario contra la sesión
// server-side (firma + fila viva en la tabla de sesiones).
type CredentialValidator interface {
	ValidateCredential(ctx context.Context, token string) (auth.Claims, error)
}

// RequireSession corta con 401 si no hay credencial válida con sesión viva.
// Deja las claims en el contexto para los handlers.
func RequireSession(v CredentialValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "no token provided")
				return
			}

			claims, err := v.ValidateCredential(r.Context(), token)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin exige una credencial firmada con role=admin.
// No consulta la tabla de sesiones: la credencial de admin no tiene sesión.
func RequireAdmin(v auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "no token provided")
				return
			}

			claims, err := v.Verify(r.Context(), token)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			if !claims.IsAdmin() {
				httpx.WriteError(w, http.StatusForbidden, "not authorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(h string) string {
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
