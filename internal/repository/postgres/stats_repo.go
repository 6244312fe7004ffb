package postgres

import (
	"context"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) domain.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) JobSeekerStats(ctx context.Context, jobSeekerID int64) (*domain.JobSeekerStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'interviewed')
		FROM applications
		WHERE job_seeker_id = $1`

	var s domain.JobSeekerStats
	err := r.db.QueryRow(ctx, query, jobSeekerID).Scan(
		&s.TotalApplications, &s.PendingApplications, &s.InterviewedApplications,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statsRepo) EmployerStats(ctx context.Context, employerID int64) (*domain.EmployerStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM jobs WHERE employer_id = $1),
			(SELECT COUNT(*) FROM jobs WHERE employer_id = $1 AND status = 'open'),
			(SELECT COUNT(*) FROM applications a JOIN jobs j ON a.job_id = j.id WHERE j.employer_id = $1)`

	var s domain.EmployerStats
	err := r.db.QueryRow(ctx, query, employerID).Scan(
		&s.TotalJobs, &s.OpenJobs, &s.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
