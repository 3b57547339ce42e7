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

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db TxQuerier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db TxQuerier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `a.id, a.student_id, a.job_id, a.recruiter_id, a.status, a.applied_date,
	a.resume_url, a.cover_letter, a.ai_score, a.analysis, a.created_at, a.updated_at`

// applicationScanTargets returns the Scan destinations matching applicationColumns.
func applicationScanTargets(app *models.Application, analysis *[]byte) []any {
	return []any{
		&app.ID, &app.StudentID, &app.JobID, &app.RecruiterID, &app.Status, &app.AppliedDate,
		&app.ResumeURL, &app.CoverLetter, &app.AIScore, analysis, &app.CreatedAt, &app.UpdatedAt,
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	var analysis []byte
	if err := row.Scan(applicationScanTargets(&app, &analysis)...); err != nil {
		return nil, err
	}
	if len(analysis) > 0 {
		app.Analysis = analysis
	}
	return &app, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}
	return app, nil
}

func (r *ApplicationRepo) ExistsForStudentAndJob(ctx context.Context, studentID, jobID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE student_id = $1 AND job_id = $2)`,
		studentID, jobID,
	).Scan(&exists)
	if err != nil {
		log.Printf("Error checking application for student %s and job %s: %v\n", studentID, jobID, err)
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return exists, nil
}

// CreateAndCountOnJob inserts the application and bumps jobs.applications_count atomically.
// A unique violation on (student_id, job_id) is reported as storage.ErrConflict.
func (r *ApplicationRepo) CreateAndCountOnJob(ctx context.Context, app *models.Application) (*models.Application, error) {
	var analysis []byte
	if len(app.Analysis) > 0 {
		analysis = app.Analysis
	}

	var created *models.Application
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO applications AS a (id, student_id, job_id, recruiter_id, status, applied_date,
				resume_url, cover_letter, ai_score, analysis, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NOW(), $6, $7, $8, $9::jsonb, NOW(), NOW())
			RETURNING ` + applicationColumns
		var err error
		created, err = scanApplication(tx.QueryRow(ctx, insert,
			uuid.New(),
			app.StudentID,
			app.JobID,
			app.RecruiterID,
			models.StatusPending,
			app.ResumeURL,
			app.CoverLetter,
			app.AIScore,
			analysis,
		))
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx,
			`UPDATE jobs SET applications_count = applications_count + 1, updated_at = NOW() WHERE id = $1`,
			app.JobID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, err
		case pgErrorCode(err) == pgUniqueViolation:
			log.Printf("Duplicate application for student %s and job %s (%s)\n", app.StudentID, app.JobID, pgConstraint(err))
			return nil, fmt.Errorf("failed to create application: %w", storage.ErrConflict)
		case pgErrorCode(err) == pgForeignKeyViolation:
			log.Printf("Error creating application (foreign key %s): %v\n", pgConstraint(err), err)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", created.ID)
	return created, nil
}

// ListByJob returns a job's applications with applicant summaries, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.ApplicationWithStudent, error) {
	query := `
		SELECT ` + applicationColumns + `, u.id, u.name, u.email, u.phone
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.job_id = $1
		ORDER BY a.applied_date DESC, a.id`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying applications by job ID %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}
	defer rows.Close()

	result := []models.ApplicationWithStudent{}
	for rows.Next() {
		var item models.ApplicationWithStudent
		var analysis []byte
		targets := append(applicationScanTargets(&item.Application, &analysis),
			&item.Student.ID, &item.Student.Name, &item.Student.Email, &item.Student.Phone)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		if len(analysis) > 0 {
			item.Analysis = analysis
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return result, nil
}

// ListByStudent returns a student's applications with job summaries, newest first.
func (r *ApplicationRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.ApplicationWithJob, error) {
	query := `
		SELECT ` + applicationColumns + `, j.id, j.title, j.company, j.location, j.job_type
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.student_id = $1
		ORDER BY a.applied_date DESC, a.id`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		log.Printf("Error querying applications by student ID %s: %v\n", studentID, err)
		return nil, fmt.Errorf("failed to list applications by student: %w", err)
	}
	defer rows.Close()

	result := []models.ApplicationWithJob{}
	for rows.Next() {
		var item models.ApplicationWithJob
		var analysis []byte
		targets := append(applicationScanTargets(&item.Application, &analysis),
			&item.Job.ID, &item.Job.Title, &item.Job.Company, &item.Job.Location, &item.Job.JobType)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		if len(analysis) > 0 {
			item.Analysis = analysis
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return result, nil
}

// UpdateStatus performs a compare-and-set on status and records the event in the same transaction.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus, changedBy uuid.UUID) (*models.Application, error) {
	var updated *models.Application
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		update := `
			UPDATE applications AS a SET status = $3, updated_at = NOW()
			WHERE a.id = $1 AND a.status = $2
			RETURNING ` + applicationColumns
		var err error
		updated, err = scanApplication(tx.QueryRow(ctx, update, id, from, to))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return storage.ErrStaleStatus
			}
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO application_status_events (id, application_id, from_status, to_status, changed_by, changed_at)
			VALUES ($1, $2, $3, $4, $5, NOW())`,
			uuid.New(), id, from, to, changedBy,
		)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrStaleStatus) {
			log.Printf("Stale status update on application %s (expected %s)\n", id, from)
			return nil, err
		}
		log.Printf("Error updating application status for ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	log.Printf("Application %s moved %s -> %s by %s", id, from, to, changedBy)
	return updated, nil
}

// ListStatusEvents returns an application's status history, oldest first.
func (r *ApplicationRepo) ListStatusEvents(ctx context.Context, applicationID uuid.UUID) ([]models.StatusEvent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, application_id, from_status, to_status, changed_by, changed_at
		FROM application_status_events
		WHERE application_id = $1
		ORDER BY changed_at, id`, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status events: %w", err)
	}
	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StatusEvent])
	if err != nil {
		return nil, fmt.Errorf("failed to scan status events: %w", err)
	}
	if events == nil {
		events = []models.StatusEvent{}
	}
	return events, nil
}
