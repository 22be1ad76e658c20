package shelters

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"straysense/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, adminGate func(http.Handler) http.Handler) {
	r.Group(func(gr chi.Router) {
		gr.Use(adminGate)
		gr.Get("/admin/shelters", listHandler(svc))
		gr.Post("/admin/shelters", createHandler(svc))
		gr.Put("/admin/shelters/{shelterID}", updateHandler(svc))
		gr.Delete("/admin/shelters/{shelterID}", deleteHandler(svc))
	})
}

type shelterRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type shelterResponse struct {
	ID        string    `json:"shelter_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		out := make([]shelterResponse, 0, len(items))
		for _, sh := range items {
			out = append(out, toShelterResponse(sh))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shelterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		sh, err := svc.Create(r.Context(), toInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteError(w, http.StatusBadRequest, "missing required fields")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toShelterResponse(sh))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shelterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		sh, err := svc.Update(r.Context(), chi.URLParam(r, "shelterID"), toInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "missing required fields")
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "shelter not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "server error")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Delete(r.Context(), chi.URLParam(r, "shelterID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrHasAnimals):
				httpx.WriteError(w, http.StatusBadRequest, "cannot delete shelter with associated animals")
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "shelter not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "server error")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "shelter deleted successfully"})
	}
}

func toInput(req shelterRequest) Input {
	return Input{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		Phone:   req.Phone,
		Email:   req.Email,
	}
}

func toShelterResponse(sh Shelter) shelterResponse {
	return shelterResponse{
		ID:        sh.ID,
		Name:      sh.Name,
		Address:   sh.Address,
		City:      sh.City,
		Country:   sh.Country,
		Phone:     sh.Phone,
		Email:     sh.Email,
		CreatedAt: sh.CreatedAt,
		UpdatedAt: sh.UpdatedAt,
	}
}
