package domain

import (
	"context"
	"time"
)

// Application status labels. The set is validated but transitions between
// labels are not ordered; an employer may move an application to any label.
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusInterviewed = "interviewed"
	ApplicationStatusOffered     = "offered"
	ApplicationStatusRejected    = "rejected"
)

// ValidApplicationStatuses is the allowed label set for employer updates.
var ValidApplicationStatuses = map[string]bool{
	ApplicationStatusPending:     true,
	ApplicationStatusReviewed:    true,
	ApplicationStatusInterviewed: true,
	ApplicationStatusOffered:     true,
	ApplicationStatusRejected:    true,
}

// Application links a job seeker profile to a job. Resume, cover letter
// and the two foreign keys are immutable after creation; only status and
// employer notes change, and only through the owning employer.
type Application struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"job_id"`
	JobSeekerID   int64     `json:"job_seeker_id"`
	Resume        string    `json:"resume"`
	CoverLetter   *string   `json:"cover_letter,omitempty"`
	EmployerNotes *string   `json:"employer_notes,omitempty"`
	Status        string    `json:"status"`
	AppliedDate   time.Time `json:"applied_date"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

type ApplyInput struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

type StatusUpdateInput struct {
	Status        string `json:"status" binding:"required,oneof=pending reviewed interviewed offered rejected"`
	EmployerNotes string `json:"employer_notes"`
}

type ApplicationRepository interface {
	// Create inserts the application. The storage layer enforces the
	// (job_id, job_seeker_id) uniqueness and returns ErrDuplicate when a
	// concurrent insert won the race.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]Application, error)
	Exists(ctx context.Context, jobID, jobSeekerID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string, employerNotes *string) (*Application, error)
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	// Job seeker operations
	ApplyToJob(ctx context.Context, userID string, jobID int64, input ApplyInput) (*Application, error)
	ListMyApplications(ctx context.Context, userID string) ([]Application, error)
	DeleteApplication(ctx context.Context, userID string, id int64) error

	// Employer operations
	ListForJob(ctx context.Context, userID string, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, userID string, id int64, input StatusUpdateInput) (*Application, error)
}
