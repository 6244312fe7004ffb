package usecase_test

import (
	"context"
	"testing"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should force employer id from the caller's profile", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "employer1").Return(&domain.EmployerProfile{ID: 10, UserID: "employer1"}, nil)

		jobRepo := new(MockJobRepo)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			job := args.Get(1).(*domain.Job)
			assert.Equal(t, int64(10), job.EmployerID)
			assert.Equal(t, domain.JobStatusOpen, job.Status)
			assert.NotNil(t, job.Skills)
		})

		uc := usecase.NewJobUsecase(jobRepo, employerRepo)
		job := &domain.Job{Title: "Backend Engineer", EmployerID: 999}
		assert.NoError(t, uc.CreateJob(ctx, "employer1", job))
		jobRepo.AssertExpectations(t)
	})

	t.Run("Should require an employer profile", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "fresh").Return(nil, domain.ErrNotFound)

		uc := usecase.NewJobUsecase(new(MockJobRepo), employerRepo)
		err := uc.CreateJob(ctx, "fresh", &domain.Job{Title: "X"})
		assertKind(t, err, apperror.KindProfileRequired)
	})

	t.Run("Should reject inverted salary range", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "employer1").Return(&domain.EmployerProfile{ID: 10}, nil)

		min, max := 90000.0, 60000.0
		uc := usecase.NewJobUsecase(new(MockJobRepo), employerRepo)
		err := uc.CreateJob(ctx, "employer1", &domain.Job{Title: "X", SalaryMin: &min, SalaryMax: &max})
		assertKind(t, err, apperror.KindValidation)
	})
}

func TestJobOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid updating a job owned by another employer", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "intruder").Return(&domain.EmployerProfile{ID: 20}, nil)

		jobRepo := new(MockJobRepo)
		jobRepo.On("UpdateOwned", ctx, mock.AnythingOfType("*domain.Job"), int64(20)).Return(domain.ErrNotOwner)

		uc := usecase.NewJobUsecase(jobRepo, employerRepo)
		err := uc.UpdateJob(ctx, "intruder", &domain.Job{ID: 1, Title: "Hijack"})
		assertKind(t, err, apperror.KindForbidden)
	})

	t.Run("Should return not_found for an unknown job on update", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "employer1").Return(&domain.EmployerProfile{ID: 10}, nil)

		jobRepo := new(MockJobRepo)
		jobRepo.On("UpdateOwned", ctx, mock.AnythingOfType("*domain.Job"), int64(10)).Return(domain.ErrNotFound)

		uc := usecase.NewJobUsecase(jobRepo, employerRepo)
		err := uc.UpdateJob(ctx, "employer1", &domain.Job{ID: 404, Title: "X"})
		assertKind(t, err, apperror.KindNotFound)
	})

	t.Run("Should forbid deleting a job owned by another employer", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "intruder").Return(&domain.EmployerProfile{ID: 20}, nil)

		jobRepo := new(MockJobRepo)
		jobRepo.On("DeleteOwned", ctx, int64(1), int64(20)).Return(domain.ErrNotOwner)

		uc := usecase.NewJobUsecase(jobRepo, employerRepo)
		err := uc.DeleteJob(ctx, "intruder", 1)
		assertKind(t, err, apperror.KindForbidden)
	})

	t.Run("Should delete an owned job", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "employer1").Return(&domain.EmployerProfile{ID: 10}, nil)

		jobRepo := new(MockJobRepo)
		jobRepo.On("DeleteOwned", ctx, int64(1), int64(10)).Return(nil)

		uc := usecase.NewJobUsecase(jobRepo, employerRepo)
		assert.NoError(t, uc.DeleteJob(ctx, "employer1", 1))
	})
}

func TestListJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should clamp invalid pagination to defaults", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", ctx, domain.JobFilter{}, 10, 0).Return([]domain.JobWithEmployer{}, int64(0), nil)

		uc := usecase.NewJobUsecase(jobRepo, new(MockEmployerRepo))
		_, _, err := uc.ListJobs(ctx, domain.JobFilter{}, -3, 0)
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})

	t.Run("Should scope my jobs to the caller's profile", func(t *testing.T) {
		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "employer1").Return(&domain.EmployerProfile{ID: 10}, nil)

		jobRepo := new(MockJobRepo)
		jobRepo.On("FetchByEmployerID", ctx, int64(10), 10, 0).Return([]domain.Job{{ID: 1, EmployerID: 10}}, int64(1), nil)

		uc := usecase.NewJobUsecase(jobRepo, employerRepo)
		jobs, total, err := uc.ListMyJobs(ctx, "employer1", 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, jobs, 1)
	})
}
