package storage

import (
	"context"

	"ats-api/internal/models"
	"ats-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create hashes req.Password and inserts the user with the given role.
	Create(ctx context.Context, req *dto.CreateUserRequest, role models.Role) (*models.User, error)
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	ListNewestFirst(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ExistsForStudentAndJob(ctx context.Context, studentID, jobID uuid.UUID) (bool, error)
	// CreateAndCountOnJob inserts the application and increments the job's
	// applications_count in one transaction.
	CreateAndCountOnJob(ctx context.Context, app *models.Application) (*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.ApplicationWithStudent, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.ApplicationWithJob, error)
	// UpdateStatus moves the application from -> to only if its stored status
	// still equals from, and appends the matching status event.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus, changedBy uuid.UUID) (*models.Application, error)
	ListStatusEvents(ctx context.Context, applicationID uuid.UUID) ([]models.StatusEvent, error)
}

// JobListCache caches the full job list. Implementations must treat an
// unavailable backend as a miss.
//
// Get returns the invalidation generation current at the time of the call,
// hit or miss. Set stores jobs only while that generation is still current,
// so a list read from the database before a concurrent Invalidate is dropped.
type JobListCache interface {
	Get(ctx context.Context) (jobs []models.Job, generation int64, ok bool)
	Set(ctx context.Context, generation int64, jobs []models.Job)
	Invalidate(ctx context.Context)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
