package sessions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"straysense/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, sessionGate func(http.Handler) http.Handler) {
	r.Post("/auth/login", loginHandler(svc))
	r.Post("/admin/verify", adminVerifyHandler(svc))

	r.Group(func(gr chi.Router) {
		gr.Use(sessionGate)
		gr.Post("/auth/logout", logoutHandler(svc))
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string        `json:"token"`
	SessionID string        `json:"session_id"`
	User      loginUserInfo `json:"user"`
}

type loginUserInfo struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password, clientIP(r), r.UserAgent())
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "missing email or password")
			case errors.Is(err, ErrInvalidCredentials):
				httpx.WriteError(w, http.StatusUnauthorized, "invalid email or password")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "server error")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, loginResponse{
			Token:     res.Token,
			SessionID: res.SessionID,
			User: loginUserInfo{
				UserID:    res.User.ID,
				Email:     res.User.Email,
				FirstName: res.User.FirstName,
				LastName:  res.User.LastName,
			},
		})
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if err := svc.Logout(r.Context(), token); err != nil {
			if errors.Is(err, ErrInvalidToken) {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
	}
}

type adminVerifyRequest struct {
	Password string `json:"password"`
}

func adminVerifyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminVerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, err := svc.AdminVerify(r.Context(), req.Password)
		if err != nil {
			if errors.Is(err, ErrBadAdminPassword) {
				httpx.WriteError(w, http.StatusUnauthorized, "invalid admin password")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// bearerToken extrae el token del header Authorization.
func bearerToken(h string) string {
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func clientIP(r *http.Request) string {
	// chi middleware.RealIP ya normalizó RemoteAddr si vino X-Forwarded-For
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return host
}
