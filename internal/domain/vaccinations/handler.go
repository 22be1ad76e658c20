package vaccinations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"straysense/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, sessionGate, adminGate func(http.Handler) http.Handler) {
	// Consulta de agenda por animal (usuario autenticado).
	r.Group(func(gr chi.Router) {
		gr.Use(sessionGate)
		gr.Get("/vaccinations/animals", listByAnimalsHandler(svc))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(adminGate)
		gr.Get("/admin/vaccines", listTypesHandler(svc))
		gr.Post("/admin/vaccines", createTypeHandler(svc))
		gr.Put("/admin/vaccines/{vaccineID}", updateTypeHandler(svc))
		gr.Delete("/admin/vaccines/{vaccineID}", deleteTypeHandler(svc))

		gr.Get("/admin/vaccinations", listHandler(svc))
		gr.Post("/admin/vaccinations", scheduleHandler(svc))
		gr.Put("/admin/vaccinations/{vaccinationID}/complete", completeHandler(svc))
	})
}

type vaccineTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type vaccineTypeResponse struct {
	ID          string `json:"vaccine_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type vaccinationResponse struct {
	ID            string  `json:"vaccination_id"`
	AnimalID      string  `json:"animal_id"`
	VaccineID     string  `json:"vaccine_id"`
	ScheduledDate string  `json:"scheduled_date"`
	CompletedDate *string `json:"completed_date,omitempty"`
	AnimalName    string  `json:"animal_name,omitempty"`
	VaccineName   string  `json:"vaccine_name,omitempty"`
}

const dateLayout = "2006-01-02"

func listTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListTypes(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		out := make([]vaccineTypeResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTypeResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vaccineTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		t, err := svc.CreateType(r.Context(), req.Name, req.Description)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteError(w, http.StatusBadRequest, "name is required")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toTypeResponse(t))
	}
}

func updateTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vaccineTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		t, err := svc.UpdateType(r.Context(), chi.URLParam(r, "vaccineID"), req.Name, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "name is required")
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "vaccine not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "server error")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toTypeResponse(t))
	}
}

func deleteTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteType(r.Context(), chi.URLParam(r, "vaccineID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusNotFound, "vaccine not found")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "vaccine deleted"})
	}
}

func scheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AnimalID      string `json:"animal_id"`
			VaccineID     string `json:"vaccine_id"`
			ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(req.ScheduledDate))
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "scheduled_date must be YYYY-MM-DD")
			return
		}

		v, err := svc.Schedule(r.Context(), req.AnimalID, req.VaccineID, date)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteError(w, http.StatusBadRequest, "missing required fields")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toVaccinationResponse(v))
	}
}

func completeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Complete(r.Context(), chi.URLParam(r, "vaccinationID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusNotFound, "vaccination not found")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVaccinationResponse(v))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVaccinationResponses(items))
	}
}

func listByAnimalsHandler(svc *Service) http.HandlerFunc {
	// Por compatibilidad recibe animal_ids separados por coma,
	// pero la agenda se resuelve para el primero.
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("animal_ids"))
		if raw == "" {
			httpx.WriteError(w, http.StatusBadRequest, "animal_ids query param is required")
			return
		}

		first := strings.TrimSpace(strings.Split(raw, ",")[0])
		items, err := svc.ListByAnimal(r.Context(), first)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "failed to fetch vaccinations")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVaccinationResponses(items))
	}
}

func toTypeResponse(t VaccineType) vaccineTypeResponse {
	return vaccineTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description}
}

func toVaccinationResponse(v Vaccination) vaccinationResponse {
	resp := vaccinationResponse{
		ID:            v.ID,
		AnimalID:      v.AnimalID,
		VaccineID:     v.VaccineID,
		ScheduledDate: v.ScheduledDate.Format(dateLayout),
		AnimalName:    v.AnimalName,
		VaccineName:   v.VaccineName,
	}
	if v.CompletedDate != nil {
		s := v.CompletedDate.Format(dateLayout)
		resp.CompletedDate = &s
	}
	return resp
}

func toVaccinationResponses(items []Vaccination) []vaccinationResponse {
	out := make([]vaccinationResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toVaccinationResponse(v))
	}
	return out
}
