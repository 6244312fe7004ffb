package domain

import (
	"context"
	"time"
)

// Education is one entry of a job seeker's education history.
type Education struct {
	Institution  string     `json:"institution" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"field_of_study" validate:"required"`
	FromDate     time.Time  `json:"from_date" validate:"required"`
	ToDate       *time.Time `json:"to_date,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Experience is one entry of a job seeker's work history.
type Experience struct {
	Company     string     `json:"company" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Location    string     `json:"location,omitempty"`
	FromDate    time.Time  `json:"from_date" validate:"required"`
	ToDate      *time.Time `json:"to_date,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// JobSeekerProfile is the role-specific extension record for a job seeker.
// Exactly one exists per job_seeker user, created empty at registration.
type JobSeekerProfile struct {
	ID         int64        `json:"id"`
	UserID     string       `json:"user_id"`
	Resume     string       `json:"resume,omitempty"`
	Skills     []string     `json:"skills"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Bio        *string      `json:"bio,omitempty"`
	Location   *string      `json:"location,omitempty"`
	Website    *string      `json:"website,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// EmployerProfile is the role-specific extension record for an employer.
// Required at registration; jobs are owned through it.
type EmployerProfile struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name" validate:"required"`
	Industry    string    `json:"industry" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Website     *string   `json:"website,omitempty" validate:"omitempty,url"`
	Location    string    `json:"location" validate:"required"`
	CompanySize string    `json:"company_size" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublicEmployerProfile is the public-facing employer card shown next to
// job listings. It never exposes the owning user id.
type PublicEmployerProfile struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	Industry    string  `json:"industry"`
	Description string  `json:"description"`
	Website     *string `json:"website,omitempty"`
	Location    string  `json:"location"`
	CompanySize string  `json:"company_size"`
}

func (p *EmployerProfile) Public() *PublicEmployerProfile {
	return &PublicEmployerProfile{
		ID:          p.ID,
		CompanyName: p.CompanyName,
		Industry:    p.Industry,
		Description: p.Description,
		Website:     p.Website,
		Location:    p.Location,
		CompanySize: p.CompanySize,
	}
}

type JobSeekerProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*JobSeekerProfile, error)
	GetByID(ctx context.Context, id int64) (*JobSeekerProfile, error)
	Update(ctx context.Context, profile *JobSeekerProfile) error
}

type EmployerProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
	GetByID(ctx context.Context, id int64) (*EmployerProfile, error)
	Update(ctx context.Context, profile *EmployerProfile) error
}

type ProfileUsecase interface {
	// Job seeker operations (owner-scoped)
	GetJobSeekerProfile(ctx context.Context, userID string) (*JobSeekerProfile, error)
	UpdateJobSeekerProfile(ctx context.Context, profile *JobSeekerProfile) (*JobSeekerProfile, error)
	// Employer operations (owner-scoped)
	GetEmployerProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	UpdateEmployerProfile(ctx context.Context, profile *EmployerProfile) (*EmployerProfile, error)
	// Public
	GetPublicEmployer(ctx context.Context, id int64) (*PublicEmployerProfile, error)
}
