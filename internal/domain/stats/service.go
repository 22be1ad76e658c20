package stats

import "context"

// Snapshot son los contadores del dashboard de administración.
type Snapshot struct {
	TotalUsers             int
	TotalAnimals           int
	ActiveReports          int
	TotalShelters          int
	ActiveAdoptionRequests int
	PendingVaccinations    int
}

type Repository interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	return s.repo.Snapshot(ctx)
}
