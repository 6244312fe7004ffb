package usecase_test

import (
	"context"
	"testing"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApplicationUC(
	appRepo *MockApplicationRepo,
	jobRepo *MockJobRepo,
	seekerRepo *MockJobSeekerRepo,
	employerRepo *MockEmployerRepo,
	notifier *MockNotifier,
) domain.ApplicationUsecase {
	return usecase.NewApplicationUsecase(appRepo, jobRepo, seekerRepo, employerRepo, notifier)
}

func assertKind(t *testing.T, err error, kind string) {
	t.Helper()
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
}

func openJob(id, employerID int64) *domain.Job {
	return &domain.Job{
		ID:         id,
		EmployerID: employerID,
		Title:      "Backend Engineer",
		Status:     domain.JobStatusOpen,
	}
}

func seekerProfile(id int64, userID string) *domain.JobSeekerProfile {
	return &domain.JobSeekerProfile{ID: id, UserID: userID, Resume: "resume.pdf"}
}

func TestApplyToJobPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return not_found for unknown job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		uc := newApplicationUC(new(MockApplicationRepo), jobRepo, new(MockJobSeekerRepo), new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 99, domain.ApplyInput{})
		assertKind(t, err, apperror.KindNotFound)
	})

	t.Run("Should reject closed job before checking deadline", func(t *testing.T) {
		past := time.Now().Add(-24 * time.Hour)
		job := openJob(1, 10)
		job.Status = domain.JobStatusClosed
		job.ApplicationDeadline = &past

		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)

		uc := newApplicationUC(new(MockApplicationRepo), jobRepo, new(MockJobSeekerRepo), new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{})
		assertKind(t, err, apperror.KindJobClosed)
	})

	t.Run("Should reject passed deadline on an open job", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		job := openJob(1, 10)
		job.ApplicationDeadline = &past

		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(job, nil)

		uc := newApplicationUC(new(MockApplicationRepo), jobRepo, new(MockJobSeekerRepo), new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{})
		assertKind(t, err, apperror.KindDeadlinePassed)
	})

	t.Run("Should require a job seeker profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(nil, domain.ErrNotFound)

		uc := newApplicationUC(new(MockApplicationRepo), jobRepo, seekerRepo, new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{})
		assertKind(t, err, apperror.KindProfileRequired)
	})

	t.Run("Should reject a second application to the same job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(seekerProfile(5, "user1"), nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(1), int64(5)).Return(true, nil)

		uc := newApplicationUC(appRepo, jobRepo, seekerRepo, new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{})
		assertKind(t, err, apperror.KindDuplicateApplication)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestApplyToJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should default resume to the profile resume", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(seekerProfile(5, "user1"), nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, "resume.pdf", app.Resume)
			assert.Equal(t, int64(5), app.JobSeekerID)
			assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		})

		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByID", ctx, int64(10)).Return(&domain.EmployerProfile{ID: 10, UserID: "employer1"}, nil)

		notifier := new(MockNotifier)
		notifier.On("Publish", ctx, mock.AnythingOfType("domain.Notification")).Return(nil)

		uc := newApplicationUC(appRepo, jobRepo, seekerRepo, employerRepo, notifier)
		app, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{CoverLetter: "Hi"})
		assert.NoError(t, err)
		assert.NotNil(t, app.CoverLetter)
		notifier.AssertCalled(t, "Publish", ctx, mock.AnythingOfType("domain.Notification"))
	})

	t.Run("Should fail when neither input nor profile has a resume", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		profile := seekerProfile(5, "user1")
		profile.Resume = ""
		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(profile, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)

		uc := newApplicationUC(appRepo, jobRepo, seekerRepo, new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{})
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should map a lost insert race to duplicate_application", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(seekerProfile(5, "user1"), nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		uc := newApplicationUC(appRepo, jobRepo, seekerRepo, new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{})
		assertKind(t, err, apperror.KindDuplicateApplication)
	})

	t.Run("Should map a racing job delete to not_found", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(seekerProfile(5, "user1"), nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrNotFound)

		uc := newApplicationUC(appRepo, jobRepo, seekerRepo, new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{})
		assertKind(t, err, apperror.KindNotFound)
	})

	t.Run("Should succeed even when the notification publish fails", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(seekerProfile(5, "user1"), nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByID", ctx, int64(10)).Return(nil, domain.ErrNotFound)

		uc := newApplicationUC(appRepo, jobRepo, seekerRepo, employerRepo, new(MockNotifier))
		_, err := uc.ApplyToJob(ctx, "user1", 1, domain.ApplyInput{})
		assert.NoError(t, err)
	})
}

func TestApplicationOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid withdrawing someone else's application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(&domain.Application{ID: 7, JobID: 1, JobSeekerID: 99}, nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(seekerProfile(5, "user1"), nil)

		uc := newApplicationUC(appRepo, new(MockJobRepo), seekerRepo, new(MockEmployerRepo), new(MockNotifier))
		err := uc.DeleteApplication(ctx, "user1", 7)
		assertKind(t, err, apperror.KindForbidden)
		appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should allow withdrawing own application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(&domain.Application{ID: 7, JobID: 1, JobSeekerID: 5}, nil)
		appRepo.On("Delete", ctx, int64(7)).Return(nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByUserID", ctx, "user1").Return(seekerProfile(5, "user1"), nil)

		uc := newApplicationUC(appRepo, new(MockJobRepo), seekerRepo, new(MockEmployerRepo), new(MockNotifier))
		assert.NoError(t, uc.DeleteApplication(ctx, "user1", 7))
	})

	t.Run("Should forbid listing applications for a job owned by another employer", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "intruder").Return(&domain.EmployerProfile{ID: 20, UserID: "intruder"}, nil)

		appRepo := new(MockApplicationRepo)
		uc := newApplicationUC(appRepo, jobRepo, new(MockJobSeekerRepo), employerRepo, new(MockNotifier))
		_, err := uc.ListForJob(ctx, "intruder", 1)
		assertKind(t, err, apperror.KindForbidden)
		appRepo.AssertNotCalled(t, "GetByJobID", mock.Anything, mock.Anything)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown status label", func(t *testing.T) {
		uc := newApplicationUC(new(MockApplicationRepo), new(MockJobRepo), new(MockJobSeekerRepo), new(MockEmployerRepo), new(MockNotifier))
		_, err := uc.UpdateStatus(ctx, "employer1", 7, domain.StatusUpdateInput{Status: "hired"})
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("Should forbid an employer who does not own the job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(&domain.Application{ID: 7, JobID: 1, JobSeekerID: 5}, nil)

		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "intruder").Return(&domain.EmployerProfile{ID: 20, UserID: "intruder"}, nil)

		notifier := new(MockNotifier)
		uc := newApplicationUC(appRepo, jobRepo, new(MockJobSeekerRepo), employerRepo, notifier)
		_, err := uc.UpdateStatus(ctx, "intruder", 7, domain.StatusUpdateInput{Status: domain.ApplicationStatusReviewed})
		assertKind(t, err, apperror.KindForbidden)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Should update status and notify the applicant", func(t *testing.T) {
		updated := &domain.Application{ID: 7, JobID: 1, JobSeekerID: 5, Status: domain.ApplicationStatusOffered}

		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", ctx, int64(7)).Return(&domain.Application{ID: 7, JobID: 1, JobSeekerID: 5, Status: domain.ApplicationStatusPending}, nil)
		appRepo.On("UpdateStatus", ctx, int64(7), domain.ApplicationStatusOffered, mock.AnythingOfType("*string")).Return(updated, nil)

		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, int64(1)).Return(openJob(1, 10), nil)

		employerRepo := new(MockEmployerRepo)
		employerRepo.On("GetByUserID", ctx, "employer1").Return(&domain.EmployerProfile{ID: 10, UserID: "employer1"}, nil)

		seekerRepo := new(MockJobSeekerRepo)
		seekerRepo.On("GetByID", ctx, int64(5)).Return(seekerProfile(5, "user1"), nil)

		notifier := new(MockNotifier)
		notifier.On("Publish", ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Run(func(args mock.Arguments) {
			n := args.Get(1).(domain.Notification)
			assert.Equal(t, "user1", n.TargetUserID)
			assert.Equal(t, domain.NotificationKindStatus, n.Kind)
		})

		uc := newApplicationUC(appRepo, jobRepo, seekerRepo, employerRepo, notifier)
		got, err := uc.UpdateStatus(ctx, "employer1", 7, domain.StatusUpdateInput{
			Status:        domain.ApplicationStatusOffered,
			EmployerNotes: "Strong interview",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusOffered, got.Status)
		notifier.AssertExpectations(t)
	})
}
