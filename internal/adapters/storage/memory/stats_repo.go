package memory

import (
	"context"

	"straysense/internal/domain/stats"
)

type StatsRepo struct {
	users        *UsersRepo
	animals      *AnimalsRepo
	reports      *StrayReportsRepo
	shelters     *SheltersRepo
	adoptions    *AdoptionsRepo
	vaccinations *VaccinationsRepo
}

// NewStatsRepo agrega los contadores sobre los repos in-memory vivos.
func NewStatsRepo(
	users *UsersRepo,
	animalsRepo *AnimalsRepo,
	reports *StrayReportsRepo,
	sheltersRepo *SheltersRepo,
	adoptionsRepo *AdoptionsRepo,
	vaccinationsRepo *VaccinationsRepo,
) *StatsRepo {
	return &StatsRepo{
		users:        users,
		animals:      animalsRepo,
		reports:      reports,
		shelters:     sheltersRepo,
		adoptions:    adoptionsRepo,
		vaccinations: vaccinationsRepo,
	}
}

func (r *StatsRepo) Snapshot(ctx context.Context) (stats.Snapshot, error) {
	return stats.Snapshot{
		TotalUsers:             r.users.Count(),
		TotalAnimals:           r.animals.Count(),
		ActiveReports:          r.reports.CountPending(),
		TotalShelters:          r.shelters.Count(),
		ActiveAdoptionRequests: r.adoptions.CountPending(),
		PendingVaccinations:    r.vaccinations.CountPending(),
	}, nil
}
