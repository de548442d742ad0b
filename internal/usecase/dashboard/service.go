package dashboard

import (
	"context"
	domainLoad "freight-tms/internal/domain/load"
	domainProfile "freight-tms/internal/domain/profile"
	domainTask "freight-tms/internal/domain/task"
	"freight-tms/internal/usecase/access"
	appErrors "freight-tms/pkg/errors"
)

// Service loads full snapshots and hands them to Aggregate. Every call scans
// the three tables; there is no caching.
type Service struct {
	loadRepo    domainLoad.Repository
	taskRepo    domainTask.Repository
	profileRepo domainProfile.Repository
}

func NewService(
	loadRepo domainLoad.Repository,
	taskRepo domainTask.Repository,
	profileRepo domainProfile.Repository,
) *Service {
	return &Service{
		loadRepo:    loadRepo,
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
	}
}

// GetMetrics only needs an authenticated caller.
func (s *Service) GetMetrics(ctx context.Context, caller access.Caller) (*MetricsResponse, error) {
	if caller.IsZero() {
		return nil, appErrors.ErrNotAuthenticated
	}

	loads, err := s.loadRepo.List(ctx, &domainLoad.Filter{})
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.List(ctx, &domainTask.Filter{})
	if err != nil {
		return nil, err
	}
	profiles, err := s.profileRepo.List(ctx, &domainProfile.Filter{})
	if err != nil {
		return nil, err
	}

	return Aggregate(loads, tasks, profiles), nil
}
