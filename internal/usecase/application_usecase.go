package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	jobSeekerRepo   domain.JobSeekerProfileRepository
	employerRepo    domain.EmployerProfileRepository
	notifier        domain.NotificationPublisher
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	jobSeekerRepo domain.JobSeekerProfileRepository,
	employerRepo domain.EmployerProfileRepository,
	notifier domain.NotificationPublisher,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		jobSeekerRepo:   jobSeekerRepo,
		employerRepo:    employerRepo,
		notifier:        notifier,
	}
}

// ApplyToJob submits an application. Preconditions run in a fixed order
// and the first failure wins; nothing is written until all of them pass.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, userID string, jobID int64, input domain.ApplyInput) (*domain.Application, error) {
	// 1. Job must exist
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	// 2. Job must be open
	if job.Status != domain.JobStatusOpen {
		return nil, apperror.JobClosed("This job is no longer accepting applications")
	}

	// 3. Deadline must not have passed
	if job.ApplicationDeadline != nil && job.ApplicationDeadline.Before(time.Now()) {
		return nil, apperror.DeadlinePassed("Application deadline has passed")
	}

	// 4. Caller must have a job seeker profile
	profile, err := resolveJobSeekerProfile(ctx, uc.jobSeekerRepo, userID)
	if err != nil {
		return nil, err
	}

	// 5. No prior application for this (job, job seeker) pair
	exists, err := uc.applicationRepo.Exists(ctx, jobID, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.DuplicateApplication("You have already applied to this job")
	}

	resume := input.Resume
	if resume == "" {
		resume = profile.Resume
	}
	if resume == "" {
		return nil, apperror.Validation("A resume is required to apply")
	}

	app := &domain.Application{
		JobID:       jobID,
		JobSeekerID: profile.ID,
		Resume:      resume,
		Status:      domain.ApplicationStatusPending,
	}
	if input.CoverLetter != "" {
		cl := input.CoverLetter
		app.CoverLetter = &cl
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		switch {
		// The unique constraint catches the race two concurrent applies
		// can win past the existence check above.
		case errors.Is(err, domain.ErrDuplicate):
			return nil, apperror.DuplicateApplication("You have already applied to this job")
		// FK rejection: the job was deleted while this apply was in flight.
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	uc.notifyEmployer(ctx, job, app)

	return app, nil
}

// ListMyApplications returns the caller's applications, caller-scoped.
func (uc *applicationUsecase) ListMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	profile, err := resolveJobSeekerProfile(ctx, uc.jobSeekerRepo, userID)
	if err != nil {
		return nil, err
	}
	apps, err := uc.applicationRepo.GetByJobSeekerID(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// DeleteApplication withdraws an application. Only the job seeker who
// submitted it may delete it.
func (uc *applicationUsecase) DeleteApplication(ctx context.Context, userID string, id int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	profile, err := resolveJobSeekerProfile(ctx, uc.jobSeekerRepo, userID)
	if err != nil {
		return err
	}
	if app.JobSeekerID != profile.ID {
		return apperror.Forbidden("You do not own this application")
	}

	if err := uc.applicationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// ListForJob returns a job's applications to its owning employer only.
func (uc *applicationUsecase) ListForJob(ctx context.Context, userID string, jobID int64) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	profile, err := resolveEmployerProfile(ctx, uc.employerRepo, userID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != profile.ID {
		return nil, apperror.Forbidden("You do not own this job")
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateStatus lets the employer owning the referenced job move the
// application to a new status label. Only status and employer notes are
// mutable; everything else is fixed at creation.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, userID string, id int64, input domain.StatusUpdateInput) (*domain.Application, error) {
	if !domain.ValidApplicationStatuses[input.Status] {
		return nil, apperror.Validation("Invalid status. Must be: pending, reviewed, interviewed, offered, or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job associated with this application not found")
		}
		return nil, apperror.Internal(err)
	}

	profile, err := resolveEmployerProfile(ctx, uc.employerRepo, userID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != profile.ID {
		return nil, apperror.Forbidden("You do not own this application's job")
	}

	var notes *string
	if input.EmployerNotes != "" {
		notes = &input.EmployerNotes
	}
	updated, err := uc.applicationRepo.UpdateStatus(ctx, id, input.Status, notes)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	uc.notifyApplicant(ctx, job, updated)

	return updated, nil
}

// notifyEmployer tells the job's owner about a new application.
// Fire-and-forget: a failed publish is logged and never surfaces.
func (uc *applicationUsecase) notifyEmployer(ctx context.Context, job *domain.Job, app *domain.Application) {
	owner, err := uc.employerRepo.GetByID(ctx, job.EmployerID)
	if err != nil {
		logger.Log.Warn("Resolving employer for notification failed", "job_id", job.ID, "error", err)
		return
	}
	n := domain.Notification{
		TargetUserID: owner.UserID,
		Title:        "New application received",
		Message:      fmt.Sprintf("A new application was submitted for %q", job.Title),
		Kind:         domain.NotificationKindApplication,
		RelatedID:    app.ID,
	}
	if err := uc.notifier.Publish(ctx, n); err != nil {
		logger.Log.Warn("Publishing application notification failed", "application_id", app.ID, "error", err)
	}
}

// notifyApplicant tells the job seeker about a status change.
func (uc *applicationUsecase) notifyApplicant(ctx context.Context, job *domain.Job, app *domain.Application) {
	applicant, err := uc.jobSeekerRepo.GetByID(ctx, app.JobSeekerID)
	if err != nil {
		logger.Log.Warn("Resolving applicant for notification failed", "application_id", app.ID, "error", err)
		return
	}
	n := domain.Notification{
		TargetUserID: applicant.UserID,
		Title:        "Application status updated",
		Message:      fmt.Sprintf("Your application for %q is now %s", job.Title, app.Status),
		Kind:         domain.NotificationKindStatus,
		RelatedID:    app.ID,
	}
	if err := uc.notifier.Publish(ctx, n); err != nil {
		logger.Log.Warn("Publishing status notification failed", "application_id", app.ID, "error", err)
	}
}
