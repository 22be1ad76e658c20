package postgres

import (
	"context"
	"database/sql"

	"straysense/internal/domain/stats"
)

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Snapshot resuelve los seis contadores en una sola pasada.
func (r *StatsRepo) Snapshot(ctx context.Context) (stats.Snapshot, error) {
	var s stats.Snapshot
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM animals),
			(SELECT COUNT(*) FROM stray_reports WHERE status = 'pending'),
			(SELECT COUNT(*) FROM shelters),
			(SELECT COUNT(*) FROM adoptions WHERE status = 'pending'),
			(SELECT COUNT(*) FROM vaccinations WHERE completed_date IS NULL)
	`).Scan(
		&s.TotalUsers,
		&s.TotalAnimals,
		&s.ActiveReports,
		&s.TotalShelters,
		&s.ActiveAdoptionRequests,
		&s.PendingVaccinations,
	)
	return s, err
}
