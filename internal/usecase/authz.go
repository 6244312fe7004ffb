package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

// Ownership resolution helpers. The caller's profile is always derived
// server-side from the authenticated user id; owner ids supplied in
// request bodies are never consulted.

func resolveEmployerProfile(ctx context.Context, repo domain.EmployerProfileRepository, userID string) (*domain.EmployerProfile, error) {
	profile, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ProfileRequired("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func resolveJobSeekerProfile(ctx context.Context, repo domain.JobSeekerProfileRepository, userID string) (*domain.JobSeekerProfile, error) {
	profile, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ProfileRequired("Job seeker profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}
