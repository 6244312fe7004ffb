package postgres

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerProfileRepository(db *pgxpool.Pool) domain.EmployerProfileRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	query := `SELECT id, user_id, company_name, industry, description, website, location, company_size, created_at, updated_at
	          FROM employer_profiles WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	query := `SELECT id, user_id, company_name, industry, description, website, location, company_size, created_at, updated_at
	          FROM employer_profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepo) scanOne(row pgx.Row) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Industry, &p.Description,
		&p.Website, &p.Location, &p.CompanySize,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *employerRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	profile.UpdatedAt = time.Now()
	query := `UPDATE employer_profiles SET
		company_name = $2,
		industry = $3,
		description = $4,
		website = $5,
		location = $6,
		company_size = $7,
		updated_at = $8
	WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.CompanyName, profile.Industry, profile.Description,
		profile.Website, profile.Location, profile.CompanySize,
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
