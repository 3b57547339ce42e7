package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ats-api/internal/models"
	"ats-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db Querier) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

const jobColumns = `id, title, company, location, salary, job_type, description, required_skills,
	posted_by, applications_count, created_at, updated_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Salary,
		&job.JobType,
		&job.Description,
		&job.RequiredSkills,
		&job.PostedBy,
		&job.ApplicationsCount,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if job.RequiredSkills == nil {
		job.RequiredSkills = []string{}
	}
	return &job, nil
}

// Create saves a new job posting. ID and timestamps are assigned here.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	skills := job.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	query := `
		INSERT INTO jobs (id, title, company, location, salary, job_type, description, required_skills,
			posted_by, applications_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, NOW(), NOW())
		RETURNING ` + jobColumns

	created, err := scanJob(r.db.QueryRow(ctx, query,
		uuid.New(),
		job.Title,
		job.Company,
		job.Location,
		job.Salary,
		job.JobType,
		job.Description,
		skills,
		job.PostedBy,
	))
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			log.Printf("Error creating job: Foreign key violation (posted_by: %s): %v\n", job.PostedBy, err)
			return nil, fmt.Errorf("failed to create job: unknown poster: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", created.ID)
	return created, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}
	return job, nil
}

// ListNewestFirst retrieves every job ordered by creation time, newest first.
func (r *JobRepo) ListNewestFirst(ctx context.Context) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id`)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			log.Printf("Error scanning job row: %v\n", err)
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}
