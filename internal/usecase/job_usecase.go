package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerProfileRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerProfileRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

// CreateJob posts a job under the caller's employer profile. Any employer
// id arriving on the job struct is overwritten.
func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	profile, err := resolveEmployerProfile(ctx, u.employerRepo, userID)
	if err != nil {
		return err
	}
	job.EmployerID = profile.ID

	if job.Title == "" {
		return apperror.Validation("Title is required")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.Validation("salary_min cannot be greater than salary_max")
	}
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}

	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// UpdateJob mutates a job the caller's employer profile owns.
func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	profile, err := resolveEmployerProfile(ctx, u.employerRepo, userID)
	if err != nil {
		return err
	}

	if job.Title == "" {
		return apperror.Validation("Title is required")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.Validation("salary_min cannot be greater than salary_max")
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}

	if err := u.jobRepo.UpdateOwned(ctx, job, profile.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Job not found")
		case errors.Is(err, domain.ErrNotOwner):
			return apperror.Forbidden("You do not own this job")
		}
		return apperror.Internal(err)
	}
	return nil
}

// DeleteJob removes a job the caller owns; its applications cascade away.
func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	profile, err := resolveEmployerProfile(ctx, u.employerRepo, userID)
	if err != nil {
		return err
	}

	if err := u.jobRepo.DeleteOwned(ctx, id, profile.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Job not found")
		case errors.Is(err, domain.ErrNotOwner):
			return apperror.Forbidden("You do not own this job")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := u.jobRepo.GetByIDWithEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.JobWithEmployer, int64, error) {
	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.Fetch(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

// ListMyJobs returns the jobs owned by the calling employer.
func (u *jobUsecase) ListMyJobs(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	profile, err := resolveEmployerProfile(ctx, u.employerRepo, userID)
	if err != nil {
		return nil, 0, err
	}
	return u.ListEmployerJobs(ctx, profile.ID, page, pageSize)
}

// ListEmployerJobs is the public "jobs by employer" listing.
func (u *jobUsecase) ListEmployerJobs(ctx context.Context, employerID int64, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.FetchByEmployerID(ctx, employerID, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
