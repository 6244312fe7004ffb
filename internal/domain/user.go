package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
	ErrNotOwner  = errors.New("resource not owned by caller")
)

// User roles. A user's role is fixed at registration.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// CreateWithJobSeekerProfile inserts the user and an empty job seeker
	// profile in one transaction.
	CreateWithJobSeekerProfile(ctx context.Context, user *User) (*JobSeekerProfile, error)
	// CreateWithEmployerProfile inserts the user and the employer profile
	// in one transaction. Neither row exists if either insert fails.
	CreateWithEmployerProfile(ctx context.Context, user *User, profile *EmployerProfile) error
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// MeResponse bundles the current user with their role-specific profile.
type MeResponse struct {
	User    *User `json:"user"`
	Profile any   `json:"profile,omitempty"`
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=job_seeker employer"`
	// Employer-only fields, required when Role == employer.
	CompanyName string `json:"company_name" validate:"required_if=Role employer"`
	Industry    string `json:"industry" validate:"required_if=Role employer"`
	Description string `json:"description" validate:"required_if=Role employer"`
	Website     string `json:"website" validate:"omitempty,url"`
	Location    string `json:"location" validate:"required_if=Role employer"`
	CompanySize string `json:"company_size" validate:"required_if=Role employer"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	GetMe(ctx context.Context, userID string) (*MeResponse, error)
}
