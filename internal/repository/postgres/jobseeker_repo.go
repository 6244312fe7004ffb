package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobSeekerRepo struct {
	db *pgxpool.Pool
}

func NewJobSeekerProfileRepository(db *pgxpool.Pool) domain.JobSeekerProfileRepository {
	return &jobSeekerRepo{db: db}
}

func (r *jobSeekerRepo) GetByUserID(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	query := `SELECT id, user_id, resume, skills, education, experience, bio, location, website, created_at, updated_at
	          FROM job_seeker_profiles WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *jobSeekerRepo) GetByID(ctx context.Context, id int64) (*domain.JobSeekerProfile, error) {
	query := `SELECT id, user_id, resume, skills, education, experience, bio, location, website, created_at, updated_at
	          FROM job_seeker_profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *jobSeekerRepo) scanOne(row pgx.Row) (*domain.JobSeekerProfile, error) {
	var p domain.JobSeekerProfile
	var skills []string
	var educationJSON, experienceJSON []byte

	err := row.Scan(
		&p.ID, &p.UserID, &p.Resume, pq.Array(&skills),
		&educationJSON, &experienceJSON,
		&p.Bio, &p.Location, &p.Website,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	p.Skills = skills
	if err := json.Unmarshal(educationJSON, &p.Education); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(experienceJSON, &p.Experience); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *jobSeekerRepo) Update(ctx context.Context, profile *domain.JobSeekerProfile) error {
	educationJSON, err := json.Marshal(profile.Education)
	if err != nil {
		return err
	}
	experienceJSON, err := json.Marshal(profile.Experience)
	if err != nil {
		return err
	}

	profile.UpdatedAt = time.Now()
	query := `UPDATE job_seeker_profiles SET
		resume = $2,
		skills = $3,
		education = $4,
		experience = $5,
		bio = $6,
		location = $7,
		website = $8,
		updated_at = $9
	WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Resume, pq.Array(profile.Skills),
		educationJSON, experienceJSON,
		profile.Bio, profile.Location, profile.Website,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
