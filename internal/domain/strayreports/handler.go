package strayreports

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
		gr.Post("/stray-reports", submitHandler(svc))
		gr.Get("/stray-reports", listMineHandler(svc))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(adminGate)
		gr.Get("/admin/reports", listAllHandler(svc))
		gr.Put("/admin/reports/{reportID}/status", setStatusHandler(svc))
	})
}

type submitRequest struct {
	Description     string   `json:"description"`
	AnimalType      string   `json:"animal_type"`
	AnimalSize      string   `json:"animal_size"`
	VisibleInjuries string   `json:"visible_injuries"`
	Province        string   `json:"province"`
	City            string   `json:"city"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

type reportResponse struct {
	ID                string     `json:"report_id"`
	UserID            string     `json:"user_id"`
	Description       string     `json:"description"`
	AnimalType        string     `json:"animal_type,omitempty"`
	AnimalSize        string     `json:"animal_size,omitempty"`
	VisibleInjuries   string     `json:"visible_injuries,omitempty"`
	Province          string     `json:"province,omitempty"`
	City              string     `json:"city,omitempty"`
	Latitude          *float64   `json:"latitude,omitempty"`
	Longitude         *float64   `json:"longitude,omitempty"`
	Status            string     `json:"status"`
	ReportDate        time.Time  `json:"report_date"`
	AcceptedDate      *time.Time `json:"accepted_date,omitempty"`
	ProcessedAnimalID *string    `json:"processed_animal_id,omitempty"`
	FirstName         string     `json:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"`
}

func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := auth.FromContext(r.Context())

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		rep, err := svc.Submit(r.Context(), claims.UserID, SubmitInput{
			Description:     req.Description,
			AnimalType:      req.AnimalType,
			AnimalSize:      req.AnimalSize,
			VisibleInjuries: req.VisibleInjuries,
			Province:        req.Province,
			City:            req.City,
			Latitude:        req.Latitude,
			Longitude:       req.Longitude,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteError(w, http.StatusBadRequest, "description is required")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "failed to submit report")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, map[string]string{
			"message":   "report submitted successfully",
			"report_id": rep.ID,
		})
	}
}

func listMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := auth.FromContext(r.Context())

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toReportResponses(items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toReportResponses(items))
	}
}

func setStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		rep, err := svc.SetStatus(r.Context(), chi.URLParam(r, "reportID"), Status(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "invalid status")
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "report not found")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "server error")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func toReportResponse(r Report) reportResponse {
	return reportResponse{
		ID:                r.ID,
		UserID:            r.UserID,
		Description:       r.Description,
		AnimalType:        r.AnimalType,
		AnimalSize:        r.AnimalSize,
		VisibleInjuries:   r.VisibleInjuries,
		Province:          r.Province,
		City:              r.City,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		Status:            string(r.Status),
		ReportDate:        r.ReportDate,
		AcceptedDate:      r.AcceptedDate,
		ProcessedAnimalID: r.ProcessedAnimalID,
		FirstName:         r.ReporterFirstName,
		LastName:          r.ReporterLastName,
	}
}

func toReportResponses(items []Report) []reportResponse {
	out := make([]reportResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReportResponse(r))
	}
	return out
}
