package usecase

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	jobSeekerRepo domain.JobSeekerProfileRepository
	employerRepo  domain.EmployerProfileRepository
	validate      *validator.Validate
}

func NewProfileUsecase(
	jobSeekerRepo domain.JobSeekerProfileRepository,
	employerRepo domain.EmployerProfileRepository,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		jobSeekerRepo: jobSeekerRepo,
		employerRepo:  employerRepo,
		validate:      validate,
	}
}

func (u *profileUsecase) GetJobSeekerProfile(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	return resolveJobSeekerProfile(ctx, u.jobSeekerRepo, userID)
}

// UpdateJobSeekerProfile writes the caller's own profile. The user id on
// the incoming struct is discarded and forced from the authenticated
// identity.
func (u *profileUsecase) UpdateJobSeekerProfile(ctx context.Context, profile *domain.JobSeekerProfile) (*domain.JobSeekerProfile, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthenticated("User not authenticated")
	}
	profile.UserID = userID

	if err := u.validate.Struct(profile); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return nil, apperror.Validation(validationMessage(vErrs))
		}
		return nil, apperror.Validation(err.Error())
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	if err := u.jobSeekerRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ProfileRequired("Job seeker profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.jobSeekerRepo.GetByUserID(ctx, userID)
}

func (u *profileUsecase) GetEmployerProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	return resolveEmployerProfile(ctx, u.employerRepo, userID)
}

func (u *profileUsecase) UpdateEmployerProfile(ctx context.Context, profile *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return nil, apperror.Unauthenticated("User not authenticated")
	}
	profile.UserID = userID

	if err := u.validate.Struct(profile); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return nil, apperror.Validation(validationMessage(vErrs))
		}
		return nil, apperror.Validation(err.Error())
	}

	if err := u.employerRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.ProfileRequired("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.employerRepo.GetByUserID(ctx, userID)
}

// GetPublicEmployer returns the public card for an employer profile.
func (u *profileUsecase) GetPublicEmployer(ctx context.Context, id int64) (*domain.PublicEmployerProfile, error) {
	profile, err := u.employerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile.Public(), nil
}
