package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"straysense/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, adminGate func(http.Handler) http.Handler) {
	// Listado público de animales adoptables.
	r.Get("/animals", listAvailableHandler(svc))

	r.Group(func(gr chi.Router) {
		gr.Use(adminGate)
		gr.Get("/admin/animals", listAllHandler(svc))
		gr.Post("/admin/animals", createHandler(svc))
		gr.Put("/admin/animals/{animalID}", updateHandler(svc))
		gr.Delete("/admin/animals/{animalID}", deleteHandler(svc))
	})
}

type animalRequest struct {
	Name         string  `json:"name"`
	Species      string  `json:"species"`
	Breed        string  `json:"breed"`
	Age          *int    `json:"age"`
	Gender       string  `json:"gender"`
	HealthStatus string  `json:"health_status"`
	Neutered     bool    `json:"neutered"`
	ShelterID    *string `json:"shelter_id"`
	ImagePath    string  `json:"image_path"`
	Status       string  `json:"status"`
	ReportID     string  `json:"report_id"`
}

type animalResponse struct {
	ID           string    `json:"animal_id"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed,omitempty"`
	Age          *int      `json:"age,omitempty"`
	Gender       string    `json:"gender"`
	HealthStatus string    `json:"health_status,omitempty"`
	Neutered     bool      `json:"neutered"`
	ShelterID    *string   `json:"shelter_id,omitempty"`
	ImagePath    string    `json:"image_path,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func listAvailableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := ListFilter{
			Species: strings.TrimSpace(q.Get("species")),
			Breed:   strings.TrimSpace(q.Get("breed")),
		}

		var err error
		if filter.AgeMin, err = parseOptionalInt(q.Get("age_min")); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "age_min must be an integer")
			return
		}
		if filter.AgeMax, err = parseOptionalInt(q.Get("age_max")); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "age_max must be an integer")
			return
		}

		items, err := svc.ListAvailable(r.Context(), filter)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "error fetching animals")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toAnimalResponses(items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponses(items))
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Species:      req.Species,
			Breed:        req.Breed,
			Age:          req.Age,
			Gender:       req.Gender,
			HealthStatus: req.HealthStatus,
			Neutered:     req.Neutered,
			ShelterID:    req.ShelterID,
			ImagePath:    req.ImagePath,
			Status:       req.Status,
			ReportID:     req.ReportID,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteError(w, http.StatusBadRequest, "missing required fields")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name         *string `json:"name"`
			Species      *string `json:"species"`
			Breed        *string `json:"breed"`
			Age          *int    `json:"age"`
			Gender       *string `json:"gender"`
			HealthStatus *string `json:"health_status"`
			Neutered     *bool   `json:"neutered"`
			ShelterID    *string `json:"shelter_id"`
			ImagePath    *string `json:"image_path"`
			Status       *string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), UpdateInput{
			Name:         req.Name,
			Species:      req.Species,
			Breed:        req.Breed,
			Age:          req.Age,
			Gender:       req.Gender,
			HealthStatus: req.HealthStatus,
			Neutered:     req.Neutered,
			ShelterID:    req.ShelterID,
			ImagePath:    req.ImagePath,
			Status:       req.Status,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "invalid input")
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "animal not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "server error")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusNotFound, "animal not found")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "animal deleted"})
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:           a.ID,
		Name:         a.Name,
		Species:      a.Species,
		Breed:        a.Breed,
		Age:          a.Age,
		Gender:       string(a.Gender),
		HealthStatus: a.HealthStatus,
		Neutered:     a.Neutered,
		ShelterID:    a.ShelterID,
		ImagePath:    a.ImagePath,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toAnimalResponses(items []Animal) []animalResponse {
	out := make([]animalResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAnimalResponse(a))
	}
	return out
}

func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
