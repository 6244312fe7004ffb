package usecase

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type dashboardUsecase struct {
	statsRepo     domain.StatsRepository
	jobSeekerRepo domain.JobSeekerProfileRepository
	employerRepo  domain.EmployerProfileRepository
}

func NewDashboardUsecase(
	statsRepo domain.StatsRepository,
	jobSeekerRepo domain.JobSeekerProfileRepository,
	employerRepo domain.EmployerProfileRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		statsRepo:     statsRepo,
		jobSeekerRepo: jobSeekerRepo,
		employerRepo:  employerRepo,
	}
}

// Stats returns the dashboard counters matching the caller's role.
func (u *dashboardUsecase) Stats(ctx context.Context, userID, role string) (any, error) {
	switch role {
	case domain.RoleJobSeeker:
		profile, err := resolveJobSeekerProfile(ctx, u.jobSeekerRepo, userID)
		if err != nil {
			return nil, err
		}
		stats, err := u.statsRepo.JobSeekerStats(ctx, profile.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return stats, nil
	case domain.RoleEmployer:
		profile, err := resolveEmployerProfile(ctx, u.employerRepo, userID)
		if err != nil {
			return nil, err
		}
		stats, err := u.statsRepo.EmployerStats(ctx, profile.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return stats, nil
	}
	return nil, apperror.Forbidden("Unknown role")
}
