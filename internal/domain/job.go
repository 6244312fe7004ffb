package domain

import (
	"context"
	"time"
)

// Job status values. Transitions between them are caller-driven; the only
// engine rule is that applications are accepted while status is open.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

type Job struct {
	ID                  int64      `json:"id"`
	EmployerID          int64      `json:"employer_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	JobType             string     `json:"job_type"`
	SalaryMin           *float64   `json:"salary_min,omitempty"`
	SalaryMax           *float64   `json:"salary_max,omitempty"`
	Skills              []string   `json:"skills"`
	Status              string     `json:"status"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// JobWithEmployer extends Job with the owning employer's public card data.
type JobWithEmployer struct {
	Job
	CompanyName     string  `json:"company_name"`
	CompanyLocation string  `json:"company_location"`
	CompanyWebsite  *string `json:"company_website,omitempty"`
	Industry        string  `json:"industry"`
}

// JobFilter is the allow-listed public listing filter. Fields combine by
// logical AND; anything the client sends outside these fields is dropped.
type JobFilter struct {
	Status   string `form:"status"`
	JobType  string `form:"job_type"`
	Location string `form:"location"`
	Skill    string `form:"skill"`
	Search   string `form:"search"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	Fetch(ctx context.Context, filter JobFilter, limit, offset int) ([]JobWithEmployer, int64, error)
	FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]Job, int64, error)
	// UpdateOwned mutates the job only when employerID owns it. The
	// ownership read and the write happen in one transaction.
	UpdateOwned(ctx context.Context, job *Job, employerID int64) error
	// DeleteOwned removes the job and, by FK cascade, its applications.
	DeleteOwned(ctx context.Context, id int64, employerID int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	UpdateJob(ctx context.Context, userID string, job *Job) error
	DeleteJob(ctx context.Context, userID string, id int64) error
	GetJob(ctx context.Context, id int64) (*JobWithEmployer, error)
	ListJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]JobWithEmployer, int64, error)
	ListMyJobs(ctx context.Context, userID string, page, pageSize int) ([]Job, int64, error)
	ListEmployerJobs(ctx context.Context, employerID int64, page, pageSize int) ([]Job, int64, error)
}
