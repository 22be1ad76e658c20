package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"straysense/internal/platform/httpx"
	"straysense/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, sessionGate, adminGate func(http.Handler) http.Handler) {
	r.Group(func(gr chi.Router) {
		gr.Use(sessionGate)
		gr.Post("/adoptions", submitHandler(svc))
		gr.Get("/user/adoptions", listMineHandler(svc))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(adminGate)
		gr.Get("/admin/adoptions", listAllHandler(svc))
		gr.Put("/admin/adoptions/{adoptionID}/status", updateStatusHandler(svc))
	})
}

type submitRequest struct {
	AnimalID string `json:"animal_id"`
}

type adoptionResponse struct {
	ID              string     `json:"adoption_id"`
	UserID          string     `json:"user_id"`
	AnimalID        string     `json:"animal_id"`
	Status          string     `json:"status"`
	HomeCheckPassed bool       `json:"home_check_passed"`
	FeePaid         bool       `json:"fee_paid"`
	ContractSigned  bool       `json:"contract_signed"`
	ApplicationDate time.Time  `json:"application_date"`
	ApprovalDate    *time.Time `json:"approval_date,omitempty"`
	AnimalName      string     `json:"animal_name,omitempty"`
	AnimalSpecies   string     `json:"species,omitempty"`
	AnimalBreed     string     `json:"breed,omitempty"`
	AnimalImagePath string     `json:"image_path,omitempty"`
	UserFirstName   string     `json:"first_name,omitempty"`
	UserLastName    string     `json:"last_name,omitempty"`
}

func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := auth.FromContext(r.Context())

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Submit(r.Context(), claims.UserID, req.AnimalID)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "animal_id is required")
			case errors.Is(err, ErrUserNotFound):
				httpx.WriteError(w, http.StatusNotFound, "user not found")
			case errors.Is(err, ErrAnimalNotFound):
				httpx.WriteError(w, http.StatusNotFound, "animal not found")
			case errors.Is(err, ErrAnimalNotAvailable):
				httpx.WriteError(w, http.StatusBadRequest, "animal is not available for adoption")
			case errors.Is(err, ErrDuplicateRequest):
				httpx.WriteError(w, http.StatusConflict, "you already have a pending adoption request for this animal")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "failed to submit adoption request")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, map[string]string{
			"message":    "adoption request submitted successfully",
			"request_id": a.ID,
		})
	}
}

func listMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := auth.FromContext(r.Context())

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "error fetching adoptions")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status          string `json:"status"`
			HomeCheckPassed *bool  `json:"home_check_passed"`
			FeePaid         *bool  `json:"fee_paid"`
			ContractSigned  *bool  `json:"contract_signed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "adoptionID"), UpdateStatusInput{
			Status:          req.Status,
			HomeCheckPassed: req.HomeCheckPassed,
			FeePaid:         req.FeePaid,
			ContractSigned:  req.ContractSigned,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "invalid status")
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "adoption not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "server error")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toAdoptionResponse(a))
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		AnimalID:        a.AnimalID,
		Status:          string(a.Status),
		HomeCheckPassed: a.HomeCheckPassed,
		FeePaid:         a.FeePaid,
		ContractSigned:  a.ContractSigned,
		ApplicationDate: a.ApplicationDate,
		ApprovalDate:    a.ApprovalDate,
		AnimalName:      a.AnimalName,
		AnimalSpecies:   a.AnimalSpecies,
		AnimalBreed:     a.AnimalBreed,
		AnimalImagePath: a.AnimalImagePath,
		UserFirstName:   a.UserFirstName,
		UserLastName:    a.UserLastName,
	}
}

func toAdoptionResponses(items []Adoption) []adoptionResponse {
	out := make([]adoptionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAdoptionResponse(a))
	}
	return out
}
