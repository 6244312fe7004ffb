package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/crypto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo      domain.UserRepository
	jobSeekerRepo domain.JobSeekerProfileRepository
	employerRepo  domain.EmployerProfileRepository
	validate      *validator.Validate
	jwtSecret     string
	jwtExpiry     time.Duration
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	jobSeekerRepo domain.JobSeekerProfileRepository,
	employerRepo domain.EmployerProfileRepository,
	validate *validator.Validate,
	jwtSecret string,
	jwtExpiry time.Duration,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		jobSeekerRepo: jobSeekerRepo,
		employerRepo:  employerRepo,
		validate:      validate,
		jwtSecret:     jwtSecret,
		jwtExpiry:     jwtExpiry,
	}
}

// Register creates the user together with its role-specific profile.
// Both rows land in one transaction: a rejected employer profile never
// leaves a half-registered user behind.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if err := u.validate.Struct(input); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return nil, apperror.Validation(validationMessage(vErrs))
		}
		return nil, apperror.Validation(err.Error())
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch input.Role {
	case domain.RoleJobSeeker:
		_, err = u.userRepo.CreateWithJobSeekerProfile(ctx, user)
	case domain.RoleEmployer:
		profile := &domain.EmployerProfile{
			CompanyName: input.CompanyName,
			Industry:    input.Industry,
			Description: input.Description,
			Location:    input.Location,
			CompanySize: input.CompanySize,
		}
		if input.Website != "" {
			profile.Website = &input.Website
		}
		err = u.userRepo.CreateWithEmployerProfile(ctx, user, profile)
	default:
		return nil, apperror.Validation("Role must be job_seeker or employer")
	}
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Validation("An account with this email already exists")
		}
		return nil, apperror.Internal(err)
	}

	token, err := crypto.GenerateToken(user.ID, user.Role, u.jwtSecret, u.jwtExpiry)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthenticated("Invalid credentials")
		}
		return nil, apperror.Internal(err)
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, apperror.Unauthenticated("Invalid credentials")
	}

	token, err := crypto.GenerateToken(user.ID, user.Role, u.jwtSecret, u.jwtExpiry)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthenticated("User not found")
		}
		return nil, err
	}
	return user, nil
}

// GetMe returns the current user together with their role profile.
func (u *authUsecase) GetMe(ctx context.Context, userID string) (*domain.MeResponse, error) {
	user, err := u.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &domain.MeResponse{User: user}
	switch user.Role {
	case domain.RoleJobSeeker:
		profile, err := u.jobSeekerRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if profile != nil {
			resp.Profile = profile
		}
	case domain.RoleEmployer:
		profile, err := u.employerRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if profile != nil {
			resp.Profile = profile
		}
	}
	return resp, nil
}
