package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobColumns = `id, employer_id, title, description, location, job_type, salary_min, salary_max, skills, status, application_deadline, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, description, location, job_type, salary_min, salary_max, skills, status, application_deadline, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location, job.JobType,
		job.SalaryMin, job.SalaryMax, pq.Array(job.Skills), job.Status,
		job.ApplicationDeadline, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job domain.Job
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.JobType,
		&job.SalaryMin, &job.SalaryMax, pq.Array(&skills), &job.Status,
		&job.ApplicationDeadline, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Skills = skills
	return &job, nil
}

// GetByIDWithEmployer retrieves a job joined with the employer's card data.
func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `
		SELECT
			j.id, j.employer_id, j.title, j.description, j.location, j.job_type,
			j.salary_min, j.salary_max, j.skills, j.status, j.application_deadline,
			j.created_at, j.updated_at,
			ep.company_name, ep.location, ep.website, ep.industry
		FROM jobs j
		JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE j.id = $1`

	var job domain.JobWithEmployer
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.JobType,
		&job.SalaryMin, &job.SalaryMax, pq.Array(&skills), &job.Status,
		&job.ApplicationDeadline, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CompanyLocation, &job.CompanyWebsite, &job.Industry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Skills = skills
	return &job, nil
}

// buildFilter renders the allow-listed filter fields into a WHERE clause.
// Fields combine by AND; anything outside the JobFilter struct never gets
// here, so unknown query keys are dropped rather than errored.
func buildFilter(filter domain.JobFilter, startIdx int) (string, []any) {
	var clauses []string
	var args []any
	idx := startIdx

	add := func(clause string, arg any) {
		clauses = append(clauses, fmt.Sprintf(clause, idx))
		args = append(args, arg)
		idx++
	}

	if filter.Status != "" {
		add("j.status = $%d", filter.Status)
	}
	if filter.JobType != "" {
		add("j.job_type = $%d", filter.JobType)
	}
	if filter.Location != "" {
		add("j.location ILIKE $%d", "%"+filter.Location+"%")
	}
	if filter.Skill != "" {
		add("$%d = ANY(j.skills)", filter.Skill)
	}
	if filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", idx, idx))
		args = append(args, "%"+filter.Search+"%")
		idx++
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	where, args := buildFilter(filter, 1)

	query := `
		SELECT
			j.id, j.employer_id, j.title, j.description, j.location, j.job_type,
			j.salary_min, j.salary_max, j.skills, j.status, j.application_deadline,
			j.created_at, j.updated_at,
			ep.company_name, ep.location, ep.website, ep.industry
		FROM jobs j
		JOIN employer_profiles ep ON j.employer_id = ep.id` + where +
		fmt.Sprintf(" ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		var job domain.JobWithEmployer
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.JobType,
			&job.SalaryMin, &job.SalaryMax, pq.Array(&skills), &job.Status,
			&job.ApplicationDeadline, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CompanyLocation, &job.CompanyWebsite, &job.Industry,
		); err != nil {
			return nil, 0, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}

	countQuery := `SELECT COUNT(*) FROM jobs j` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, employerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.JobType,
			&job.SalaryMin, &job.SalaryMax, pq.Array(&skills), &job.Status,
			&job.ApplicationDeadline, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// UpdateOwned locks the row, verifies ownership and applies the update in
// one transaction, so the ownership read cannot go stale under the write.
func (r *jobRepo) UpdateOwned(ctx context.Context, job *domain.Job, employerID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var ownerID int64
	err = tx.QueryRow(ctx, `SELECT employer_id FROM jobs WHERE id = $1 FOR UPDATE`, job.ID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if ownerID != employerID {
		return domain.ErrNotOwner
	}

	job.EmployerID = ownerID
	job.UpdatedAt = time.Now()
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		location = $4,
		job_type = $5,
		salary_min = $6,
		salary_max = $7,
		skills = $8,
		status = $9,
		application_deadline = $10,
		updated_at = $11
	WHERE id = $1`
	if _, err := tx.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.JobType,
		job.SalaryMin, job.SalaryMax, pq.Array(job.Skills), job.Status,
		job.ApplicationDeadline, job.UpdatedAt,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteOwned removes the job after verifying ownership under lock.
// Applications referencing the job go with it via ON DELETE CASCADE.
func (r *jobRepo) DeleteOwned(ctx context.Context, id int64, employerID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var ownerID int64
	err = tx.QueryRow(ctx, `SELECT employer_id FROM jobs WHERE id = $1 FOR UPDATE`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if ownerID != employerID {
		return domain.ErrNotOwner
	}

	if _, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
