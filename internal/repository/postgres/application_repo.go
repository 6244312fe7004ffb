package postgres

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// foreignKeyViolation is returned when an insert references a row that a
// concurrent delete already removed.
const foreignKeyViolation = "23503"

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique constraint over
// (job_id, job_seeker_id) is the authoritative duplicate guard; the FK to
// jobs rejects applications racing a job deletion.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, job_seeker_id, resume, cover_letter, status, applied_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	app.AppliedDate = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID,
		app.JobSeekerID,
		app.Resume,
		app.CoverLetter,
		app.Status,
		app.AppliedDate,
		app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return domain.ErrDuplicate
			case foreignKeyViolation:
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.job_seeker_id, a.resume, a.cover_letter,
			a.employer_notes, a.status, a.applied_date, a.updated_at,
			j.title, ep.company_name
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.JobSeekerID, &app.Resume, &app.CoverLetter,
		&app.EmployerNotes, &app.Status, &app.AppliedDate, &app.UpdatedAt,
		&app.JobTitle, &app.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves all applications for a job with applicant names.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.job_seeker_id, a.resume, a.cover_letter,
			a.employer_notes, a.status, a.applied_date, a.updated_at,
			u.email
		FROM applications a
		JOIN job_seeker_profiles sp ON a.job_seeker_id = sp.id
		JOIN users u ON sp.user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_date DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobSeekerID, &app.Resume, &app.CoverLetter,
			&app.EmployerNotes, &app.Status, &app.AppliedDate, &app.UpdatedAt,
			&app.ApplicantName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, nil
}

// GetByJobSeekerID retrieves the caller's applications with job context.
func (r *applicationRepo) GetByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.job_seeker_id, a.resume, a.cover_letter,
			a.employer_notes, a.status, a.applied_date, a.updated_at,
			j.title, ep.company_name
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE a.job_seeker_id = $1
		ORDER BY a.applied_date DESC`

	rows, err := r.db.Query(ctx, query, jobSeekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobSeekerID, &app.Resume, &app.CoverLetter,
			&app.EmployerNotes, &app.Status, &app.AppliedDate, &app.UpdatedAt,
			&app.JobTitle, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, jobSeekerID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND job_seeker_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, jobSeekerID).Scan(&exists)
	return exists, err
}

// UpdateStatus changes the status and employer notes, the only mutable
// fields after creation, and returns the updated record.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string, employerNotes *string) (*domain.Application, error) {
	query := `
		UPDATE applications
		SET status = $2, employer_notes = COALESCE($3, employer_notes), updated_at = $4
		WHERE id = $1
		RETURNING id, job_id, job_seeker_id, resume, cover_letter, employer_notes, status, applied_date, updated_at`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id, status, employerNotes, time.Now()).Scan(
		&app.ID, &app.JobID, &app.JobSeekerID, &app.Resume, &app.CoverLetter,
		&app.EmployerNotes, &app.Status, &app.AppliedDate, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
