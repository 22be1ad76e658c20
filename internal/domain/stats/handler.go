package stats

import (
	"net/http"

	"straysense/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, adminGate func(http.Handler) http.Handler) {
	r.Group(func(gr chi.Router) {
		gr.Use(adminGate)
		gr.Get("/admin/stats", snapshotHandler(svc))
	})
}

type snapshotResponse struct {
	TotalUsers             int `json:"totalUsers"`
	TotalAnimals           int `json:"totalAnimals"`
	ActiveReports          int `json:"activeReports"`
	TotalShelters          int `json:"totalShelters"`
	ActiveAdoptionRequests int `json:"activeAdoptionRequests"`
	PendingVaccinations    int `json:"pendingVaccinations"`
}

func snapshotHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, snapshotResponse{
			TotalUsers:             snap.TotalUsers,
			TotalAnimals:           snap.TotalAnimals,
			ActiveReports:          snap.ActiveReports,
			TotalShelters:          snap.TotalShelters,
			ActiveAdoptionRequests: snap.ActiveAdoptionRequests,
			PendingVaccinations:    snap.PendingVaccinations,
		})
	}
}
